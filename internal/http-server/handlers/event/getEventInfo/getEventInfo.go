package getEventInfo

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"summitclub/internal/lib/api/response"
	"summitclub/internal/lib/logger/sl"
	"summitclub/internal/models"
	"summitclub/internal/storage/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventInfoResponse struct {
	response.Response
	Event         models.Event          `json:"event"`
	Registrations []models.Registration `json:"registrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEventWithRegistrations(id int) (*models.Event, []models.Registration, error)
}

func New(log *slog.Logger, eventGetter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log = log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIDStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, registrations, err := eventGetter.GetEventWithRegistrations(eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))

			if errors.Is(err, session.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		log.Info("event retrieved successfully", slog.Int("registrations", len(registrations)))

		render.JSON(w, r, EventInfoResponse{
			Response:      response.OK(),
			Event:         *event,
			Registrations: registrations,
		})
	}
}
