package team

import (
	"context"
	"net/http"
	"strings"

	"shopservice/internal/domain"
)

type Service interface {
	Create(ctx context.Context, name string) (Team, error)
	List(ctx context.Context) ([]Team, error)
}

type service struct {
	uow    domain.UnitOfWork
	teams  Repository
	events domain.EventBus
}

func NewService(
	uow domain.UnitOfWork,
	teams Repository,
	events domain.EventBus,
) Service {
	return &service{
		uow:    uow,
		teams:  teams,
		events: events,
	}
}

func (s *service) Create(ctx context.Context, name string) (Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Team{}, &domain.DomainError{
			Code:       domain.ErrorCodeBadRequest,
			Message:    "team name is required",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	var result Team

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.teams.ExistsByName(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			return &domain.DomainError{
				Code:       domain.ErrorCodeTeamExists,
				Message:    "team name already exists",
				HTTPStatus: http.StatusConflict,
			}
		}

		t, err := s.teams.Save(ctx, name)
		if err != nil {
			return err
		}
		result = t

		if s.events != nil {
			s.events.Publish(ctx, domain.Event{
				Type: domain.EventTeamCreated,
				Payload: map[string]any{
					"team_id":   t.ID,
					"team_name": t.Name,
				},
			})
		}
		return nil
	})

	return result, err
}

func (s *service) List(ctx context.Context) ([]Team, error) {
	return s.teams.FindAll(ctx)
}
