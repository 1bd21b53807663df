package model

import "time"

// Classroom is a physical room where courses meet.
type Classroom struct {
	ID           int       `json:"id"`
	Code         string    `json:"code"`
	Building     string    `json:"building"`
	Capacity     int       `json:"capacity"`
	RoomType     string    `json:"room_type"`
	HasProjector bool      `json:"has_projector"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
