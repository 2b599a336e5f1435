package model

// Vehicle belongs to exactly one client and is identified by its VIN.
type Vehicle struct {
	ID             int64
	ClientID       int64
	VIN            string
	Make           *string
	Model          *string
	Trim           *string
	Year           *int
	Color          *string
	Plates         *string
	InitialMileage int
	Active         bool
}
