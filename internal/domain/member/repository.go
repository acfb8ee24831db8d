package member

import "context"

type Repository interface {
	Save(ctx context.Context, m Member) (Member, error)
	FindByID(ctx context.Context, id int64) (Member, bool, error)
	FindAll(ctx context.Context) ([]Member, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error

	FindByUsernameAndAgeGreaterThan(ctx context.Context, username string, age int) ([]Member, error)
	FindByUsernameAndAge(ctx context.Context, username string, age int) ([]Member, error)
	FindByUsername(ctx context.Context, username string) ([]Member, error)
	FindUsernames(ctx context.Context) ([]string, error)
	FindTeamViews(ctx context.Context) ([]TeamView, error)
}
