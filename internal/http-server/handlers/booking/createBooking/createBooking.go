package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"salonBooker/internal/booking"
	"salonBooker/internal/lib/api/response"
	"salonBooker/internal/lib/logger/sl"
	"salonBooker/internal/models"
)

type BookingRequest struct {
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	ServiceID string `json:"serviceId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone,omitempty"`
	Username  string `json:"username,omitempty"`
}

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(in booking.CreateInput) (models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		b, err := creator.CreateBooking(booking.CreateInput{
			Date:      req.Date,
			Time:      req.Time,
			ServiceID: req.ServiceID,
			Name:      req.Name,
			Phone:     req.Phone,
			Username:  req.Username,
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrSlotTaken):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("slot already booked"))
			case errors.Is(err, booking.ErrMissingFields):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("date, time, serviceId and name are required"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created",
			slog.Int64("id", b.ID),
			slog.String("date", b.Date),
			slog.String("time", b.Time),
		)

		responseCreated(w, r, b)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, b models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
