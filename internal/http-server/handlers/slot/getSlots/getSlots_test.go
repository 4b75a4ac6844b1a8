package getSlots

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonBooker/internal/http-server/handlers/slot/getSlots/mocks"
	"salonBooker/internal/lib/logger/handlers/slogdiscard"
)

func TestGetSlotsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.SlotsProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/api/slots?date=2024-06-01&serviceId=svc1",
			mockSetup: func(mock *mocks.SlotsProvider) {
				mock.On("AvailableSlots", "2024-06-01", "svc1").
					Return([]string{"09:00", "09:30", "10:00"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `["09:00","09:30","10:00"]`,
		},
		{
			name: "Missing date yields empty array",
			url:  "/api/slots?serviceId=svc1",
			mockSetup: func(mock *mocks.SlotsProvider) {
				mock.On("AvailableSlots", "", "svc1").Return([]string{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Fully booked day",
			url:  "/api/slots?date=2024-06-01",
			mockSetup: func(mock *mocks.SlotsProvider) {
				mock.On("AvailableSlots", "2024-06-01", "").Return([]string{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Storage failure",
			url:  "/api/slots?date=2024-06-01",
			mockSetup: func(mock *mocks.SlotsProvider) {
				mock.On("AvailableSlots", "2024-06-01", "").
					Return(nil, errors.New("disk gone"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to get available slots"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewSlotsProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
