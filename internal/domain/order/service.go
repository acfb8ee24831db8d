package order

import (
	"context"
	"fmt"
	"net/http"

	"shopservice/internal/domain"
	"shopservice/internal/domain/member"
	"shopservice/internal/domain/roundtrip"
)

type Service interface {
	Place(ctx context.Context, memberID int64) (Order, error)
	Cancel(ctx context.Context, orderID int64) (Order, error)
	CompleteDelivery(ctx context.Context, orderID int64) (Delivery, error)

	ListGraphs(ctx context.Context, search Search) (Listing[Graph], error)
	ListNaive(ctx context.Context, search Search) (Listing[SimpleView], error)
	ListFetchJoin(ctx context.Context, search Search) (Listing[SimpleView], error)
	ListSimpleViews(ctx context.Context, search Search) (Listing[SimpleView], error)
}

type service struct {
	uow     domain.UnitOfWork
	orders  Repository
	members member.Repository
	events  domain.EventBus
	clock   domain.Clock
}

func NewService(
	uow domain.UnitOfWork,
	orders Repository,
	members member.Repository,
	events domain.EventBus,
	clock domain.Clock,
) Service {
	return &service{
		uow:     uow,
		orders:  orders,
		members: members,
		events:  events,
		clock:   clock,
	}
}

func (s *service) publish(ctx context.Context, typ string, payload map[string]any) {
	if s.events != nil {
		s.events.Publish(ctx, domain.Event{Type: typ, Payload: payload})
	}
}

func (s *service) Place(ctx context.Context, memberID int64) (Order, error) {
	var result Order

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		m, ok, err := s.members.FindByID(ctx, memberID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NotFound("member")
		}

		o, err := s.orders.Save(ctx,
			Order{MemberID: m.ID, OrderDate: s.clock.Now(), Status: StatusOrder},
			Delivery{Address: m.Address, Status: DeliveryReady},
		)
		if err != nil {
			return err
		}
		result = o

		s.publish(ctx, domain.EventOrderPlaced, map[string]any{
			"order_id":  o.ID,
			"member_id": o.MemberID,
		})
		return nil
	})

	return result, err
}

func (s *service) loadOrder(ctx context.Context, orderID int64) (Order, Delivery, error) {
	o, ok, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return Order{}, Delivery{}, err
	}
	if !ok {
		return Order{}, Delivery{}, domain.NotFound("order")
	}
	d, ok, err := s.orders.FindDeliveryByID(ctx, o.DeliveryID)
	if err != nil {
		return Order{}, Delivery{}, err
	}
	if !ok {
		return Order{}, Delivery{}, fmt.Errorf("order %d references missing delivery %d", o.ID, o.DeliveryID)
	}
	return o, d, nil
}

func (s *service) Cancel(ctx context.Context, orderID int64) (Order, error) {
	var result Order

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		o, d, err := s.loadOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if d.Status == DeliveryComplete {
			return &domain.DomainError{
				Code:       domain.ErrorCodeOrderDelivered,
				Message:    "order already delivered and cannot be cancelled",
				HTTPStatus: http.StatusConflict,
			}
		}

		if o.Status != StatusCancel {
			if err := s.orders.UpdateStatus(ctx, o.ID, StatusCancel); err != nil {
				return err
			}
			o.Status = StatusCancel
			s.publish(ctx, domain.EventOrderCancelled, map[string]any{"order_id": o.ID})
		}
		result = o
		return nil
	})

	return result, err
}

func (s *service) CompleteDelivery(ctx context.Context, orderID int64) (Delivery, error) {
	var result Delivery

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		o, d, err := s.loadOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status == StatusCancel {
			return &domain.DomainError{
				Code:       domain.ErrorCodeOrderCancelled,
				Message:    "cancelled order cannot be delivered",
				HTTPStatus: http.StatusConflict,
			}
		}
		if err := s.orders.UpdateDeliveryStatus(ctx, d.ID, DeliveryComplete); err != nil {
			return err
		}
		d.Status = DeliveryComplete
		result = d
		return nil
	})

	return result, err
}

func validateSearch(search Search) error {
	if search.Status != "" && !search.Status.Valid() {
		return &domain.DomainError{
			Code:       domain.ErrorCodeBadRequest,
			Message:    "orderStatus must be ORDER or CANCEL",
			HTTPStatus: http.StatusBadRequest,
		}
	}
	return nil
}

// ListGraphs loads each order's member and delivery with separate lookups,
// costing 1 + 2N round trips for N orders.
func (s *service) ListGraphs(ctx context.Context, search Search) (Listing[Graph], error) {
	if err := validateSearch(search); err != nil {
		return Listing[Graph]{}, err
	}
	ctx, rt := roundtrip.Track(ctx)

	orders, err := s.orders.FindAll(ctx, search)
	if err != nil {
		return Listing[Graph]{}, err
	}

	graphs := make([]Graph, 0, len(orders))
	for _, o := range orders {
		m, ok, err := s.members.FindByID(ctx, o.MemberID)
		if err != nil {
			return Listing[Graph]{}, err
		}
		if !ok {
			return Listing[Graph]{}, fmt.Errorf("order %d references missing member %d", o.ID, o.MemberID)
		}

		d, ok, err := s.orders.FindDeliveryByID(ctx, o.DeliveryID)
		if err != nil {
			return Listing[Graph]{}, err
		}
		if !ok {
			return Listing[Graph]{}, fmt.Errorf("order %d references missing delivery %d", o.ID, o.DeliveryID)
		}

		graphs = append(graphs, Graph{Order: o, Member: m, Delivery: d})
	}

	return Listing[Graph]{Items: graphs, RoundTrips: rt.Count()}, nil
}

func (s *service) ListNaive(ctx context.Context, search Search) (Listing[SimpleView], error) {
	graphs, err := s.ListGraphs(ctx, search)
	if err != nil {
		return Listing[SimpleView]{}, err
	}
	return Listing[SimpleView]{Items: toViews(graphs.Items), RoundTrips: graphs.RoundTrips}, nil
}

func (s *service) ListFetchJoin(ctx context.Context, search Search) (Listing[SimpleView], error) {
	if err := validateSearch(search); err != nil {
		return Listing[SimpleView]{}, err
	}
	ctx, rt := roundtrip.Track(ctx)

	graphs, err := s.orders.FindAllWithMemberDelivery(ctx, search)
	if err != nil {
		return Listing[SimpleView]{}, err
	}
	return Listing[SimpleView]{Items: toViews(graphs), RoundTrips: rt.Count()}, nil
}

func (s *service) ListSimpleViews(ctx context.Context, search Search) (Listing[SimpleView], error) {
	if err := validateSearch(search); err != nil {
		return Listing[SimpleView]{}, err
	}
	ctx, rt := roundtrip.Track(ctx)

	views, err := s.orders.FindSimpleViews(ctx, search)
	if err != nil {
		return Listing[SimpleView]{}, err
	}
	if views == nil {
		views = []SimpleView{}
	}
	return Listing[SimpleView]{Items: views, RoundTrips: rt.Count()}, nil
}

func toViews(graphs []Graph) []SimpleView {
	views := make([]SimpleView, 0, len(graphs))
	for _, g := range graphs {
		views = append(views, NewSimpleView(g))
	}
	return views
}
