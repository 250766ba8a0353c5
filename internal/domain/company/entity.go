package company

import "time"

type Company struct {
	ID          int64
	Name        string
	Slug        string
	Email       string
	Phone       string
	Address     *string
	Description *string
	Pictures    []string
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
