package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"salonBooker/internal/models"
	"salonBooker/internal/storage"
)

const (
	servicesFile = "services.json"
	bookingsFile = "bookings.json"
	usersFile    = "users.json"
)

// Storage keeps each collection as a pretty-printed JSON array in dir.
// A missing file reads as an empty collection.
type Storage struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Storage{dir: dir}, nil
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) Services() ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var services []models.Service
	if err := s.read(servicesFile, &services); err != nil {
		return nil, err
	}

	return services, nil
}

func (s *Storage) Users() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.read(usersFile, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Storage) SaveUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(usersFile, users)
}

func (s *Storage) Bookings() ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readBookings()
}

func (s *Storage) AppendBooking(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.readBookings()
	if err != nil {
		return err
	}

	bookings = append(bookings, b)

	return s.write(bookingsFile, bookings)
}

func (s *Storage) UpdateBooking(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.readBookings()
	if err != nil {
		return err
	}

	for i := range bookings {
		if bookings[i].ID == b.ID {
			bookings[i] = b
			return s.write(bookingsFile, bookings)
		}
	}

	return storage.ErrBookingNotFound
}

func (s *Storage) readBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.read(bookingsFile, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (s *Storage) read(name string, v any) error {
	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if len(content) == 0 {
		return nil
	}

	if err = json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}

// write marshals v pretty-printed and replaces the file via rename so a
// crash mid-write never leaves a truncated collection behind.
func (s *Storage) write(name string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	tmp := filepath.Join(s.dir, name+".tmp")
	if err = os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err = os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}
