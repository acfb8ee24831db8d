package handler

import (
	"shopservice/internal/domain/member"
	"shopservice/internal/domain/order"
	"shopservice/internal/domain/team"

	"go.uber.org/zap"
)

type Handler struct {
	MemberSvc member.Service
	TeamSvc   team.Service
	OrderSvc  order.Service
	Log       *zap.Logger
}

func New(
	memberSvc member.Service,
	teamSvc team.Service,
	orderSvc order.Service,
	log *zap.Logger,
) *Handler {
	return &Handler{
		MemberSvc: memberSvc,
		TeamSvc:   teamSvc,
		OrderSvc:  orderSvc,
		Log:       log,
	}
}
