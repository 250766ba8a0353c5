package position

import "time"

type Position struct {
	ID        int64
	Name      string
	CompanyID int64
	CreatedAt time.Time
}
