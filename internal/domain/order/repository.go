package order

import "context"

type Repository interface {
	Save(ctx context.Context, o Order, d Delivery) (Order, error)
	FindByID(ctx context.Context, id int64) (Order, bool, error)
	FindDeliveryByID(ctx context.Context, id int64) (Delivery, bool, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	UpdateDeliveryStatus(ctx context.Context, id int64, status DeliveryStatus) error

	// FindAll loads orders without their associations: one round trip.
	FindAll(ctx context.Context, search Search) ([]Order, error)
	// FindAllWithMemberDelivery joins member and delivery: one round trip.
	FindAllWithMemberDelivery(ctx context.Context, search Search) ([]Graph, error)
	// FindSimpleViews selects the flat projection directly: one round trip.
	FindSimpleViews(ctx context.Context, search Search) ([]SimpleView, error)
}
