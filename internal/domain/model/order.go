package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OrderType classifies the kind of work requested for a vehicle.
type OrderType int

const (
	OrderTypeService  OrderType = 1
	OrderTypeDiagnose OrderType = 2
	OrderTypeRepair   OrderType = 3
	OrderTypeWarranty OrderType = 4
)

// Prefix returns the three-letter segment that opens order numbers of this type.
func (t OrderType) Prefix() string {
	switch t {
	case OrderTypeService:
		return "SRV"
	case OrderTypeDiagnose:
		return "DIA"
	case OrderTypeRepair:
		return "REP"
	case OrderTypeWarranty:
		return "GAR"
	default:
		return "ORD"
	}
}

// OrderStatus describes the order lifecycle state.
type OrderStatus int

const (
	OrderStatusCreated   OrderStatus = 1
	OrderStatusInProcess OrderStatus = 2
	OrderStatusFinished  OrderStatus = 3
	OrderStatusDelivered OrderStatus = 4
	OrderStatusCancelled OrderStatus = 5
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusCreated:
		return "created"
	case OrderStatusInProcess:
		return "in_process"
	case OrderStatusFinished:
		return "finished"
	case OrderStatusDelivered:
		return "delivered"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Terminal reports whether no further transition is allowed from the state.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OpenStatuses are the states an order occupies while still in the workshop.
var OpenStatuses = []OrderStatus{OrderStatusCreated, OrderStatusInProcess, OrderStatusFinished}

// Order is one unit of workshop work tied to a client's vehicle.
type Order struct {
	ID            int64
	Number        string
	Type          OrderType
	ClientID      int64
	VehicleID     int64
	AdvisorID     int64
	ServiceTypeID *int64
	Mileage       int
	Status        OrderStatus
	PromisedAt    time.Time
	CreatedAt     time.Time
	StartedAt     *time.Time
	FinishedAt    *time.Time
	DeliveredAt   *time.Time
	Notes         *string
	TotalCost     float64
	Active        bool
	Extras        []OrderLineItem
}

// OrderLineItem is an extra service applied to an order, billed at the
// catalog price captured when the order was created.
type OrderLineItem struct {
	ID             int64
	OrderID        int64
	ExtraServiceID int64
	PriceApplied   float64
}

// NextSequence derives the sequence integer for a new order number given every
// existing number that shares the prefix. Numbers that fail to parse count as
// zero instead of failing the computation.
func NextSequence(existing []string) int {
	max := 0
	for _, number := range existing {
		_, rest, found := strings.Cut(number, "-")
		if !found {
			continue
		}
		seq, err := strconv.Atoi(rest)
		if err != nil || seq < 0 {
			seq = 0
		}
		if seq > max {
			max = seq
		}
	}
	return max + 1
}

// FormatOrderNumber renders the human-readable order identifier.
func FormatOrderNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s-%06d", prefix, seq)
}
