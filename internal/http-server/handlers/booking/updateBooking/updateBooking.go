package updateBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"salonBooker/internal/booking"
	"salonBooker/internal/lib/api/response"
	"salonBooker/internal/lib/logger/sl"
	"salonBooker/internal/models"
	"salonBooker/internal/storage"
)

// UpdateRequest carries a partial booking; nil fields are left untouched.
type UpdateRequest struct {
	Date      *string               `json:"date"`
	Time      *string               `json:"time"`
	ServiceID *string               `json:"serviceId"`
	Name      *string               `json:"name"`
	Phone     *string               `json:"phone"`
	Status    *models.BookingStatus `json:"status"`
}

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(id int64, patch booking.UpdatePatch) (models.Booking, error)
}

func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", id))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		b, err := updater.UpdateBooking(id, booking.UpdatePatch{
			Date:      req.Date,
			Time:      req.Time,
			ServiceID: req.ServiceID,
			Name:      req.Name,
			Phone:     req.Phone,
			Status:    req.Status,
		})
		if err != nil {
			log.Error("failed to update booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrSlotTaken):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("new slot is unavailable"))
			case errors.Is(err, booking.ErrInvalidStatus):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown booking status"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking updated", slog.String("status", string(b.Status)))

		responseOK(w, r, b)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
