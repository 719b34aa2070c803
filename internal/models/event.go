package models

import "time"

// UsageEvent is published to Kafka whenever a user's api_usage_count grows.
type UsageEvent struct {
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// DiscoveryEvent is published to Kafka whenever a user records a new label.
type DiscoveryEvent struct {
	UserID    int64     `json:"user_id"`
	Category  string    `json:"category"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}
