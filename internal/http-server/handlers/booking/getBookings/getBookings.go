package getBookings

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"salonBooker/internal/booking"
	"salonBooker/internal/lib/api/response"
	"salonBooker/internal/lib/logger/sl"
	"salonBooker/internal/models"
)

type BookingsResponse struct {
	Data       []models.Booking   `json:"data"`
	Pagination booking.Pagination `json:"pagination"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsQuerier
type BookingsQuerier interface {
	QueryBookings(q booking.Query) ([]models.Booking, booking.Pagination, error)
}

func New(log *slog.Logger, querier BookingsQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookings.New"

		log = log.With(slog.String("op", op))

		q := booking.Query{
			Username:  r.URL.Query().Get("username"),
			StartDate: r.URL.Query().Get("startDate"),
			EndDate:   r.URL.Query().Get("endDate"),
			Status:    r.URL.Query().Get("status"),
			ServiceID: r.URL.Query().Get("serviceId"),
			Sort:      r.URL.Query().Get("sort"),
			Page:      intParam(r, "page"),
			Limit:     intParam(r, "limit"),
		}

		bookings, pagination, err := querier.QueryBookings(q)
		if err != nil {
			log.Error("failed to query bookings", sl.Err(err))

			if errors.Is(err, booking.ErrMissingUsername) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("username is required"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved",
			slog.String("username", q.Username),
			slog.Int("count", len(bookings)),
			slog.Int("total", pagination.Total),
		)

		if bookings == nil {
			bookings = []models.Booking{}
		}

		render.JSON(w, r, BookingsResponse{
			Data:       bookings,
			Pagination: pagination,
		})
	}
}

// intParam parses a numeric query parameter; absent or malformed values
// come back as zero and fall through to the query engine defaults.
func intParam(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}

	return v
}
