package getAllEvents

import (
	"log/slog"
	"net/http"

	"summitclub/internal/lib/api/response"
	"summitclub/internal/lib/logger/sl"
	"summitclub/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents() ([]models.Event, error)
}

func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		events, err := eventsGetter.GetAllEvents()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		// same filter the event calendar offers: all or one sport
		if sportParam := r.URL.Query().Get("sport"); sportParam != "" && sportParam != "all" {
			sport := models.Sport(sportParam)
			if !sport.Valid() {
				log.Error("unknown sport filter", slog.String("sport", sportParam))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown sport"))
				return
			}

			filtered := make([]models.Event, 0, len(events))
			for _, event := range events {
				if event.Sport == sport {
					filtered = append(filtered, event)
				}
			}
			events = filtered
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
