package updateBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonBooker/internal/booking"
	"salonBooker/internal/http-server/handlers/booking/updateBooking/mocks"
	"salonBooker/internal/lib/logger/handlers/slogdiscard"
	"salonBooker/internal/models"
	"salonBooker/internal/storage"
)

func strPtr(s string) *string { return &s }

func statusPtr(s models.BookingStatus) *models.BookingStatus { return &s }

func TestUpdateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		requestBody    string
		mockSetup      func(mock *mocks.BookingUpdater)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Cancel booking",
			bookingID:   "100",
			requestBody: `{"status":"canceled"}`,
			mockSetup: func(mock *mocks.BookingUpdater) {
				mock.On("UpdateBooking", int64(100), booking.UpdatePatch{
					Status: statusPtr(models.StatusCanceled),
				}).Return(models.Booking{ID: 100, Status: models.StatusCanceled}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, models.StatusCanceled, resp.Booking.Status)
			},
		},
		{
			name:        "Reschedule",
			bookingID:   "100",
			requestBody: `{"date":"2024-06-02","time":"10:00"}`,
			mockSetup: func(mock *mocks.BookingUpdater) {
				mock.On("UpdateBooking", int64(100), booking.UpdatePatch{
					Date: strPtr("2024-06-02"),
					Time: strPtr("10:00"),
				}).Return(models.Booking{ID: 100, Date: "2024-06-02", Time: "10:00", Status: models.StatusConfirmed}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"date":"2024-06-02"`)
			},
		},
		{
			name:           "Missing id",
			bookingID:      "",
			requestBody:    `{"status":"canceled"}`,
			mockSetup:      func(mock *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"booking id is required"}`, body)
			},
		},
		{
			name:           "Invalid id format",
			bookingID:      "abc",
			requestBody:    `{"status":"canceled"}`,
			mockSetup:      func(mock *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"invalid booking id format"}`, body)
			},
		},
		{
			name:           "Invalid JSON",
			bookingID:      "100",
			requestBody:    `not json`,
			mockSetup:      func(mock *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"failed to decode request"}`, body)
			},
		},
		{
			name:        "Not found",
			bookingID:   "42",
			requestBody: `{"status":"canceled"}`,
			mockSetup: func(mock *mocks.BookingUpdater) {
				mock.On("UpdateBooking", int64(42), booking.UpdatePatch{
					Status: statusPtr(models.StatusCanceled),
				}).Return(models.Booking{}, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"booking not found"}`, body)
			},
		},
		{
			name:        "Slot conflict on reschedule",
			bookingID:   "100",
			requestBody: `{"time":"10:00"}`,
			mockSetup: func(mock *mocks.BookingUpdater) {
				mock.On("UpdateBooking", int64(100), booking.UpdatePatch{
					Time: strPtr("10:00"),
				}).Return(models.Booking{}, booking.ErrSlotTaken)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"new slot is unavailable"}`, body)
			},
		},
		{
			name:        "Unknown status",
			bookingID:   "100",
			requestBody: `{"status":"done"}`,
			mockSetup: func(mock *mocks.BookingUpdater) {
				mock.On("UpdateBooking", int64(100), booking.UpdatePatch{
					Status: statusPtr(models.BookingStatus("done")),
				}).Return(models.Booking{}, booking.ErrInvalidStatus)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"unknown booking status"}`, body)
			},
		},
		{
			name:        "Storage failure",
			bookingID:   "100",
			requestBody: `{"status":"canceled"}`,
			mockSetup: func(mock *mocks.BookingUpdater) {
				mock.On("UpdateBooking", int64(100), booking.UpdatePatch{
					Status: statusPtr(models.StatusCanceled),
				}).Return(models.Booking{}, errors.New("disk gone"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"failed to update booking"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewBookingUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			url := "/api/bookings"
			if tc.bookingID != "" {
				url = "/api/bookings/" + tc.bookingID
			}

			req, err := http.NewRequest(http.MethodPatch, url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/api/bookings", func(r chi.Router) {
				r.Patch("/", handler)
				r.Patch("/{id}", handler)
			})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
