package entity

import "time"

// StatusCheck is a liveness ping record stored by the status endpoint.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
