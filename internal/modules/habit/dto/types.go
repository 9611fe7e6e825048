package dto

import "time"

type ObjectiveOutput struct {
	ID        string
	Text      string
	Completed bool
	Year      int
	Week      int
	CreatedAt time.Time
}
