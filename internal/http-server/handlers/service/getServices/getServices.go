package getServices

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"salonBooker/internal/lib/api/response"
	"salonBooker/internal/lib/logger/sl"
	"salonBooker/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ServicesProvider
type ServicesProvider interface {
	Services() ([]models.Service, error)
}

func New(log *slog.Logger, provider ServicesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.service.getServices.New"

		log = log.With(slog.String("op", op))

		services, err := provider.Services()
		if err != nil {
			log.Error("failed to get services", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get services"))
			return
		}

		log.Info("services retrieved", slog.Int("count", len(services)))

		if services == nil {
			services = []models.Service{}
		}

		render.JSON(w, r, services)
	}
}
