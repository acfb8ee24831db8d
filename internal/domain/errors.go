package domain

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrorCodeBadRequest     ErrorCode = "BAD_REQUEST"
	ErrorCodeTeamExists     ErrorCode = "TEAM_EXISTS"
	ErrorCodeOrderDelivered ErrorCode = "ORDER_DELIVERED"
	ErrorCodeOrderCancelled ErrorCode = "ORDER_CANCELLED"
)

// DomainError is an expected failure that the HTTP layer renders as is.
type DomainError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NotFound(what string) *DomainError {
	return &DomainError{
		Code:       ErrorCodeNotFound,
		Message:    what + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}
