package booking

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"salonBooker/internal/models"
	"salonBooker/internal/storage"
)

var (
	ErrSlotTaken       = errors.New("slot already booked")
	ErrMissingFields   = errors.New("date, time, serviceId and name are required")
	ErrMissingUsername = errors.New("username is required")
	ErrInvalidStatus   = errors.New("unknown booking status")
)

const (
	openingHour = 9
	closingHour = 18

	defaultLimit = 10
)

// Store is the slice of storage the booking service needs.
type Store interface {
	Bookings() ([]models.Booking, error)
	AppendBooking(b models.Booking) error
	UpdateBooking(b models.Booking) error
}

// Service owns every read-modify-write cycle over the booking collection.
// The mutex serializes them so at most one active booking holds a given
// (date, time) slot even under concurrent requests.
type Service struct {
	store  Store
	mu     sync.Mutex
	lastID int64
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// slotUniverse returns every half-hour label from 09:00 up to, not
// including, 18:00.
func slotUniverse() []string {
	slots := make([]string, 0, (closingHour-openingHour)*2)
	for h := openingHour; h < closingHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}

	return slots
}

// AvailableSlots lists the slot labels on date not held by an active
// booking. The service does not affect slot generation; duration is not
// modeled. An empty date yields an empty list.
func (s *Service) AvailableSlots(date, serviceID string) ([]string, error) {
	if date == "" {
		return []string{}, nil
	}

	bookings, err := s.store.Bookings()
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	taken := make(map[string]bool)
	for _, b := range bookings {
		if b.Date == date && b.Status.Active() {
			taken[b.Time] = true
		}
	}

	available := make([]string, 0, (closingHour-openingHour)*2)
	for _, slot := range slotUniverse() {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	return available, nil
}

type CreateInput struct {
	Date      string
	Time      string
	ServiceID string
	Name      string
	Phone     string
	Username  string
}

// CreateBooking appends a confirmed booking for the requested slot, or
// fails with ErrSlotTaken when an active booking already holds it.
func (s *Service) CreateBooking(in CreateInput) (models.Booking, error) {
	if in.Date == "" || in.Time == "" || in.ServiceID == "" || in.Name == "" {
		return models.Booking{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.store.Bookings()
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	if hasConflict(bookings, in.Date, in.Time, 0) {
		return models.Booking{}, ErrSlotTaken
	}

	b := models.Booking{
		ID:        s.nextID(),
		Username:  in.Username,
		Name:      in.Name,
		Phone:     in.Phone,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    models.StatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.store.AppendBooking(b); err != nil {
		return models.Booking{}, fmt.Errorf("failed to save booking: %w", err)
	}

	return b, nil
}

type UpdatePatch struct {
	Date      *string
	Time      *string
	ServiceID *string
	Name      *string
	Phone     *string
	Status    *models.BookingStatus
}

// UpdateBooking merges patch fields into the stored record. The slot
// conflict check runs only when the patch moves the booking to a
// different (date, time) pair, so cancellation always succeeds once the
// record is found.
func (s *Service) UpdateBooking(id int64, patch UpdatePatch) (models.Booking, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Booking{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.store.Bookings()
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	idx := -1
	for i := range bookings {
		if bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Booking{}, storage.ErrBookingNotFound
	}

	cur := bookings[idx]

	moved := (patch.Date != nil && *patch.Date != cur.Date) ||
		(patch.Time != nil && *patch.Time != cur.Time)
	if moved {
		targetDate, targetTime := cur.Date, cur.Time
		if patch.Date != nil {
			targetDate = *patch.Date
		}
		if patch.Time != nil {
			targetTime = *patch.Time
		}

		if hasConflict(bookings, targetDate, targetTime, id) {
			return models.Booking{}, ErrSlotTaken
		}
	}

	merged := merge(cur, patch)

	if err = s.store.UpdateBooking(merged); err != nil {
		return models.Booking{}, fmt.Errorf("failed to save booking: %w", err)
	}

	return merged, nil
}

type Query struct {
	Username  string
	StartDate string
	EndDate   string
	Status    string
	ServiceID string
	Sort      string
	Page      int
	Limit     int
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// QueryBookings filters a user's bookings, sorts them by date+time and
// returns one 1-indexed page. It never mutates state.
func (s *Service) QueryBookings(q Query) ([]models.Booking, Pagination, error) {
	if q.Username == "" {
		return nil, Pagination{}, ErrMissingUsername
	}

	bookings, err := s.store.Bookings()
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	matched := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Username != q.Username {
			continue
		}
		if q.StartDate != "" && b.Date < q.StartDate {
			continue
		}
		if q.EndDate != "" && b.Date > q.EndDate {
			continue
		}
		if q.Status != "" && string(b.Status) != q.Status {
			continue
		}
		if q.ServiceID != "" && b.ServiceID != q.ServiceID {
			continue
		}
		matched = append(matched, b)
	}

	desc := q.Sort == "desc"
	sort.SliceStable(matched, func(i, j int) bool {
		// ISO date plus zero-padded HH:MM compares correctly as a string.
		a := matched[i].Date + "T" + matched[i].Time
		b := matched[j].Date + "T" + matched[j].Time
		if desc {
			return a > b
		}
		return a < b
	})

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	total := len(matched)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pagination := Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}

	return matched[start:end], pagination, nil
}

// CancelStalePending cancels pending bookings created more than ttl ago
// and returns how many it touched.
func (s *Service) CancelStalePending(ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.store.Bookings()
	if err != nil {
		return 0, fmt.Errorf("failed to load bookings: %w", err)
	}

	cutoff := time.Now().UTC().Add(-ttl)

	canceled := 0
	for _, b := range bookings {
		if b.Status != models.StatusPending || !b.CreatedAt.Before(cutoff) {
			continue
		}

		b.Status = models.StatusCanceled
		if err = s.store.UpdateBooking(b); err != nil {
			return canceled, fmt.Errorf("failed to cancel booking %d: %w", b.ID, err)
		}
		canceled++
	}

	return canceled, nil
}

// hasConflict reports whether an active booking other than excludeID
// already holds (date, time).
func hasConflict(bookings []models.Booking, date, timeSlot string, excludeID int64) bool {
	for _, b := range bookings {
		if b.ID != excludeID && b.Date == date && b.Time == timeSlot && b.Status.Active() {
			return true
		}
	}

	return false
}

func merge(b models.Booking, patch UpdatePatch) models.Booking {
	if patch.Date != nil {
		b.Date = *patch.Date
	}
	if patch.Time != nil {
		b.Time = *patch.Time
	}
	if patch.ServiceID != nil {
		b.ServiceID = *patch.ServiceID
	}
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.Phone != nil {
		b.Phone = *patch.Phone
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}

	return b
}

// nextID hands out millisecond timestamps bumped past the previous value,
// so two creations in the same millisecond still get distinct ids. Callers
// must hold s.mu.
func (s *Service) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	return id
}
