package model

import "time"

// RateLimit is the core API quota of a hosting provider
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}
