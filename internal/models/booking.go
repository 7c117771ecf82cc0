package models

import (
	"time"
)

type BookingStatus string

const (
	StatusPendingVerification BookingStatus = "Pending Verification"
	StatusVerified            BookingStatus = "Verified"
	StatusRejected            BookingStatus = "Rejected"
)

// UnknownItineraryID is stored on bookings submitted while no package was active.
const UnknownItineraryID = "unknown"

type Booking struct {
	ID          string        `json:"id"`
	ItineraryID string        `json:"itineraryId"`
	FullName    string        `json:"fullName"`
	Mobile      string        `json:"mobile"`
	Email       string        `json:"email"`
	Adults      int           `json:"adults"`
	Children    int           `json:"children"`
	TotalAmount int           `json:"totalAmount"`
	Status      BookingStatus `json:"status"`
	Timestamp   int64         `json:"timestamp"` // Unix milliseconds
}

func (b Booking) CreatedAt() time.Time {
	return time.UnixMilli(b.Timestamp)
}
