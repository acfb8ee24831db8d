package order

import (
	"time"

	"shopservice/internal/domain"
	"shopservice/internal/domain/member"
)

type Status string

const (
	StatusOrder  Status = "ORDER"
	StatusCancel Status = "CANCEL"
)

func (s Status) Valid() bool {
	return s == StatusOrder || s == StatusCancel
}

type DeliveryStatus string

const (
	DeliveryReady    DeliveryStatus = "READY"
	DeliveryComplete DeliveryStatus = "COMP"
)

type Delivery struct {
	ID      int64
	Address domain.Address
	Status  DeliveryStatus
}

// Order holds only the keys of its associations. Use Graph when the member
// and delivery have been loaded as well.
type Order struct {
	ID         int64
	MemberID   int64
	DeliveryID int64
	OrderDate  time.Time
	Status     Status
}

type Graph struct {
	Order    Order
	Member   member.Member
	Delivery Delivery
}

// Search filters order listings. Empty fields match everything; MemberName
// is a substring match on the member username.
type Search struct {
	MemberName string
	Status     Status
}

// SimpleView is the flat order summary shared by every listing strategy.
type SimpleView struct {
	OrderID    int64
	MemberName string
	OrderDate  time.Time
	Status     Status
	Address    domain.Address
}

func NewSimpleView(g Graph) SimpleView {
	return SimpleView{
		OrderID:    g.Order.ID,
		MemberName: g.Member.Username,
		OrderDate:  g.Order.OrderDate,
		Status:     g.Order.Status,
		Address:    g.Delivery.Address,
	}
}

// Listing is a query result together with the number of storage round trips
// spent producing it.
type Listing[T any] struct {
	Items      []T
	RoundTrips int
}
