package models

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCanceled  BookingStatus = "canceled"
)

// Valid reports whether s is one of the three known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCanceled:
		return true
	}
	return false
}

// Active reports whether a booking with this status occupies its slot.
func (s BookingStatus) Active() bool {
	return s != StatusCanceled
}

type Booking struct {
	ID        int64         `json:"id"`
	Username  string        `json:"username,omitempty"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone,omitempty"`
	ServiceID string        `json:"serviceId"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
