package dto

import (
	"time"

	"shopservice/internal/domain/order"
)

// SimpleOrder is the order summary served by every simple-orders version
// from v2 on.
type SimpleOrder struct {
	OrderID     int64     `json:"orderId"`
	Name        string    `json:"name"`
	OrderDate   time.Time `json:"orderDate"`
	OrderStatus string    `json:"orderStatus"`
	Address     Address   `json:"address"`
}

func NewSimpleOrders(vs []order.SimpleView) []SimpleOrder {
	res := make([]SimpleOrder, 0, len(vs))
	for _, v := range vs {
		res = append(res, SimpleOrder{
			OrderID:     v.OrderID,
			Name:        v.MemberName,
			OrderDate:   v.OrderDate,
			OrderStatus: string(v.Status),
			Address:     NewAddress(v.Address),
		})
	}
	return res
}

type Delivery struct {
	ID      int64   `json:"id"`
	Address Address `json:"address"`
	Status  string  `json:"status"`
}

func NewDelivery(d order.Delivery) Delivery {
	return Delivery{ID: d.ID, Address: NewAddress(d.Address), Status: string(d.Status)}
}

// OrderDetail is the full order graph served by v1.
type OrderDetail struct {
	ID          int64     `json:"id"`
	OrderDate   time.Time `json:"orderDate"`
	OrderStatus string    `json:"orderStatus"`
	Member      Member    `json:"member"`
	Delivery    Delivery  `json:"delivery"`
}

func NewOrderDetails(gs []order.Graph) []OrderDetail {
	res := make([]OrderDetail, 0, len(gs))
	for _, g := range gs {
		res = append(res, OrderDetail{
			ID:          g.Order.ID,
			OrderDate:   g.Order.OrderDate,
			OrderStatus: string(g.Order.Status),
			Member:      NewMember(g.Member),
			Delivery:    NewDelivery(g.Delivery),
		})
	}
	return res
}

type Order struct {
	ID          int64     `json:"id"`
	MemberID    int64     `json:"memberId"`
	DeliveryID  int64     `json:"deliveryId"`
	OrderDate   time.Time `json:"orderDate"`
	OrderStatus string    `json:"orderStatus"`
}

func NewOrder(o order.Order) Order {
	return Order{
		ID:          o.ID,
		MemberID:    o.MemberID,
		DeliveryID:  o.DeliveryID,
		OrderDate:   o.OrderDate,
		OrderStatus: string(o.Status),
	}
}

type PlaceOrderRequest struct {
	MemberID int64 `json:"memberId"`
}
