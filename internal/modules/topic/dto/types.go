package dto

import "time"

type AddInput struct {
	Name string
	Icon string
}

type UpdateInput struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

type TopicOutput struct {
	ID           string
	Name         string
	Color        string
	Icon         string
	TotalMinutes float64
	CreatedAt    time.Time
}
