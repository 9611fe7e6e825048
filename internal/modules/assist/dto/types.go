package dto

import "time"

type MessageOutput struct {
	Role string
	Text string
	At   time.Time
}

type ChatOutput struct {
	Reply   string
	History []MessageOutput
}
