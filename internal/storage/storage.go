package storage

import (
	"errors"

	"salonBooker/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// Storage persists the three record collections. Both backends load and
// return whole collections; callers own filtering and conflict checks.
type Storage interface {
	Services() ([]models.Service, error)
	Users() ([]models.User, error)
	SaveUsers(users []models.User) error
	Bookings() ([]models.Booking, error)
	AppendBooking(b models.Booking) error
	UpdateBooking(b models.Booking) error
	Close() error
}
