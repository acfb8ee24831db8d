package team

import "context"

type Repository interface {
	Save(ctx context.Context, name string) (Team, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindByID(ctx context.Context, id int64) (Team, bool, error)
	FindAll(ctx context.Context) ([]Team, error)
}
