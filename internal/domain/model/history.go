package model

import "time"

// ServiceHistory is the immutable record written when a serviced order is
// delivered. It references the order and vehicle by id only.
type ServiceHistory struct {
	ID            int64
	VehicleID     int64
	OrderID       int64
	ServiceTypeID int64
	Mileage       int
	ServiceDate   time.Time
	NextMileage   *int
	NextDate      *time.Time
	TotalCost     float64
}

// MaintenancePlanner projects when the vehicle should come back after a
// completed service.
type MaintenancePlanner interface {
	NextMileage(current int) int
	NextDate(from time.Time) time.Time
}

// FixedIntervalPlanner projects the next service a fixed distance and a fixed
// number of months ahead.
type FixedIntervalPlanner struct {
	MileageStep int
	MonthsAhead int
}

// DefaultPlanner matches the workshop's standing maintenance policy.
func DefaultPlanner() FixedIntervalPlanner {
	return FixedIntervalPlanner{MileageStep: 10000, MonthsAhead: 6}
}

func (p FixedIntervalPlanner) NextMileage(current int) int {
	return current + p.MileageStep
}

func (p FixedIntervalPlanner) NextDate(from time.Time) time.Time {
	return from.AddDate(0, p.MonthsAhead, 0)
}
