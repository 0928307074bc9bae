package entity

import "time"

// Company representa una organización/tenant del sistema. Es dueña de cero o más bodegas.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
