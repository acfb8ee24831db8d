package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shopservice/internal/domain"
	"shopservice/internal/domain/order"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `o.id, o.member_id, o.delivery_id, o.order_date, o.status`

func scanOrderInto(o *order.Order, dest ...any) []any {
	return append([]any{&o.ID, &o.MemberID, &o.DeliveryID, &o.OrderDate, &o.Status}, dest...)
}

func scanOrder(s scanner) (order.Order, error) {
	var o order.Order
	if err := s.Scan(scanOrderInto(&o)...); err != nil {
		return order.Order{}, err
	}
	o.OrderDate = o.OrderDate.UTC()
	return o, nil
}

func (r *OrderRepository) Save(ctx context.Context, o order.Order, d order.Delivery) (order.Order, error) {
	if err := queryRow(ctx, r.db,
		`INSERT INTO deliveries (city, street, zipcode, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		d.Address.City(), d.Address.Street(), d.Address.Zipcode(), string(d.Status),
	).Scan(&o.DeliveryID); err != nil {
		return order.Order{}, err
	}

	if err := queryRow(ctx, r.db,
		`INSERT INTO orders (member_id, delivery_id, order_date, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		o.MemberID, o.DeliveryID, o.OrderDate.UTC(), string(o.Status),
	).Scan(&o.ID); err != nil {
		return order.Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (order.Order, bool, error) {
	o, err := scanOrder(queryRow(ctx, r.db,
		`SELECT `+orderColumns+`
		   FROM orders o
		  WHERE o.id = $1`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, false, nil
	}
	if err != nil {
		return order.Order{}, false, err
	}
	return o, true, nil
}

func (r *OrderRepository) FindDeliveryByID(ctx context.Context, id int64) (order.Delivery, bool, error) {
	var (
		d                     order.Delivery
		city, street, zipcode string
	)
	err := queryRow(ctx, r.db,
		`SELECT id, city, street, zipcode, status
		   FROM deliveries
		  WHERE id = $1`,
		id,
	).Scan(&d.ID, &city, &street, &zipcode, &d.Status)

	if errors.Is(err, sql.ErrNoRows) {
		return order.Delivery{}, false, nil
	}
	if err != nil {
		return order.Delivery{}, false, err
	}
	d.Address = domain.NewAddress(city, street, zipcode)
	return d, true, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) error {
	res, err := exec(ctx, r.db,
		`UPDATE orders SET status = $2 WHERE id = $1`,
		id, string(status),
	)
	return expectOneRow(res, err, "order")
}

func (r *OrderRepository) UpdateDeliveryStatus(ctx context.Context, id int64, status order.DeliveryStatus) error {
	res, err := exec(ctx, r.db,
		`UPDATE deliveries SET status = $2 WHERE id = $1`,
		id, string(status),
	)
	return expectOneRow(res, err, "delivery")
}

func expectOneRow(res sql.Result, err error, what string) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFound(what)
	}
	return nil
}

func (r *OrderRepository) FindAll(ctx context.Context, search order.Search) ([]order.Order, error) {
	where, args := searchClause(search)
	rows, err := query(ctx, r.db,
		`SELECT `+orderColumns+`
		   FROM orders o
		   JOIN members m ON m.id = o.member_id`+where+`
		  ORDER BY o.id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrder)
}

func (r *OrderRepository) FindAllWithMemberDelivery(ctx context.Context, search order.Search) ([]order.Graph, error) {
	where, args := searchClause(search)
	rows, err := query(ctx, r.db,
		`SELECT `+orderColumns+`, `+memberColumns+`,
		        d.id, d.city, d.street, d.zipcode, d.status
		   FROM orders o
		   JOIN members m ON m.id = o.member_id
		   JOIN deliveries d ON d.id = o.delivery_id`+where+`
		  ORDER BY o.id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(s scanner) (order.Graph, error) {
		var (
			g                        order.Graph
			teamID                   sql.NullInt64
			mCity, mStreet, mZipcode string
			dCity, dStreet, dZipcode string
		)
		err := s.Scan(scanOrderInto(&g.Order,
			&g.Member.ID, &g.Member.Username, &g.Member.Age, &teamID, &mCity, &mStreet, &mZipcode,
			&g.Delivery.ID, &dCity, &dStreet, &dZipcode, &g.Delivery.Status,
		)...)
		if err != nil {
			return order.Graph{}, err
		}
		g.Order.OrderDate = g.Order.OrderDate.UTC()
		if teamID.Valid {
			id := teamID.Int64
			g.Member.TeamID = &id
		}
		g.Member.Address = domain.NewAddress(mCity, mStreet, mZipcode)
		g.Delivery.Address = domain.NewAddress(dCity, dStreet, dZipcode)
		return g, nil
	})
}

func (r *OrderRepository) FindSimpleViews(ctx context.Context, search order.Search) ([]order.SimpleView, error) {
	where, args := searchClause(search)
	rows, err := query(ctx, r.db,
		`SELECT o.id, m.username, o.order_date, o.status, d.city, d.street, d.zipcode
		   FROM orders o
		   JOIN members m ON m.id = o.member_id
		   JOIN deliveries d ON d.id = o.delivery_id`+where+`
		  ORDER BY o.id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(s scanner) (order.SimpleView, error) {
		var (
			v                     order.SimpleView
			orderDate             time.Time
			city, street, zipcode string
		)
		if err := s.Scan(&v.OrderID, &v.MemberName, &orderDate, &v.Status, &city, &street, &zipcode); err != nil {
			return order.SimpleView{}, err
		}
		v.OrderDate = orderDate.UTC()
		v.Address = domain.NewAddress(city, street, zipcode)
		return v, nil
	})
}
