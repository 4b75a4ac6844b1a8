package getSlots

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"salonBooker/internal/lib/api/response"
	"salonBooker/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotsProvider
type SlotsProvider interface {
	AvailableSlots(date, serviceID string) ([]string, error)
}

// New returns the free slots for a date as a bare JSON array of "HH:MM"
// strings. A missing date is answered with an empty array, matching what
// the booking form expects while no date is picked yet.
func New(log *slog.Logger, provider SlotsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slot.getSlots.New"

		log = log.With(slog.String("op", op))

		date := r.URL.Query().Get("date")
		serviceID := r.URL.Query().Get("serviceId")

		slots, err := provider.AvailableSlots(date, serviceID)
		if err != nil {
			log.Error("failed to get available slots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get available slots"))
			return
		}

		log.Info("slots retrieved",
			slog.String("date", date),
			slog.Int("count", len(slots)),
		)

		render.JSON(w, r, slots)
	}
}
