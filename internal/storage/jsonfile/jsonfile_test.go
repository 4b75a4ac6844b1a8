package jsonfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonBooker/internal/models"
	"salonBooker/internal/storage"
)

func TestMissingFilesReadAsEmpty(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir())
	require.NoError(t, err)

	bookings, err := s.Bookings()
	require.NoError(t, err)
	assert.Empty(t, bookings)

	services, err := s.Services()
	require.NoError(t, err)
	assert.Empty(t, services)

	users, err := s.Users()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAppendAndUpdateBooking(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir())
	require.NoError(t, err)

	b := models.Booking{
		ID:        1717200000000,
		Username:  "ana",
		Name:      "Ana",
		ServiceID: "svc1",
		Date:      "2024-06-01",
		Time:      "09:00",
		Status:    models.StatusConfirmed,
		CreatedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}

	require.NoError(t, s.AppendBooking(b))

	got, err := s.Bookings()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b, got[0])

	b.Status = models.StatusCanceled
	require.NoError(t, s.UpdateBooking(b))

	got, err = s.Bookings()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusCanceled, got[0].Status)
}

func TestUpdateUnknownBooking(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir())
	require.NoError(t, err)

	err = s.UpdateBooking(models.Booking{ID: 42})
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestFilesArePrettyPrinted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.AppendBooking(models.Booking{ID: 1, Date: "2024-06-01", Time: "09:00"}))

	content, err := os.ReadFile(filepath.Join(dir, "bookings.json"))
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(content), "\n  "), "expected indented JSON, got: %s", content)

	_, err = os.Stat(filepath.Join(dir, "bookings.json.tmp"))
	assert.True(t, os.IsNotExist(err), "temp file should not survive a write")
}

func TestSaveAndLoadUsers(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir())
	require.NoError(t, err)

	users := []models.User{{Username: "admin", Password: "123"}}
	require.NoError(t, s.SaveUsers(users))

	got, err := s.Users()
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestCorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bookings.json"), []byte("{not json"), 0o644))

	_, err = s.Bookings()
	assert.Error(t, err)
}
