package member

import (
	"context"
	"net/http"
	"strings"

	"shopservice/internal/domain"
	"shopservice/internal/domain/team"
)

type Service interface {
	Join(ctx context.Context, m Member) (Member, error)
	Get(ctx context.Context, id int64) (Member, bool, error)
	List(ctx context.Context) ([]Member, error)
	Search(ctx context.Context, q Query) ([]Member, error)
	Usernames(ctx context.Context) ([]string, error)
	TeamViews(ctx context.Context) ([]TeamView, error)
}

type service struct {
	uow     domain.UnitOfWork
	members Repository
	teams   team.Repository
	events  domain.EventBus
}

func NewService(
	uow domain.UnitOfWork,
	members Repository,
	teams team.Repository,
	events domain.EventBus,
) Service {
	return &service{
		uow:     uow,
		members: members,
		teams:   teams,
		events:  events,
	}
}

func badRequest(msg string) *domain.DomainError {
	return &domain.DomainError{
		Code:       domain.ErrorCodeBadRequest,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

func (s *service) Join(ctx context.Context, m Member) (Member, error) {
	m.Username = strings.TrimSpace(m.Username)
	if m.Username == "" {
		return Member{}, badRequest("member name is required")
	}
	if m.Age < 0 {
		return Member{}, badRequest("age must not be negative")
	}

	var result Member

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if m.TeamID != nil {
			if _, ok, err := s.teams.FindByID(ctx, *m.TeamID); err != nil {
				return err
			} else if !ok {
				return domain.NotFound("team")
			}
		}

		saved, err := s.members.Save(ctx, m)
		if err != nil {
			return err
		}
		result = saved

		if s.events != nil {
			s.events.Publish(ctx, domain.Event{
				Type: domain.EventMemberJoined,
				Payload: map[string]any{
					"member_id": saved.ID,
					"username":  saved.Username,
				},
			})
		}
		return nil
	})

	return result, err
}

func (s *service) Get(ctx context.Context, id int64) (Member, bool, error) {
	return s.members.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Member, error) {
	return s.members.FindAll(ctx)
}

func (s *service) Search(ctx context.Context, q Query) ([]Member, error) {
	if q.Username == "" {
		return nil, badRequest("username is required")
	}

	switch {
	case q.Age != nil && q.AgeGreaterThan != nil:
		return nil, badRequest("age and ageGreaterThan are mutually exclusive")
	case q.AgeGreaterThan != nil:
		return s.members.FindByUsernameAndAgeGreaterThan(ctx, q.Username, *q.AgeGreaterThan)
	case q.Age != nil:
		return s.members.FindByUsernameAndAge(ctx, q.Username, *q.Age)
	default:
		return s.members.FindByUsername(ctx, q.Username)
	}
}

func (s *service) Usernames(ctx context.Context) ([]string, error) {
	return s.members.FindUsernames(ctx)
}

func (s *service) TeamViews(ctx context.Context) ([]TeamView, error) {
	return s.members.FindTeamViews(ctx)
}
