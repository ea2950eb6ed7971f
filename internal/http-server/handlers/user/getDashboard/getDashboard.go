package getDashboard

import (
	"log/slog"
	"net/http"

	"summitclub/internal/lib/api/response"
	"summitclub/internal/lib/logger/sl"
	"summitclub/internal/models"

	"github.com/go-chi/render"
)

type DashboardResponse struct {
	response.Response
	Events []models.Event `json:"events"`
	Posts  []models.Post  `json:"posts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DashboardGetter
type DashboardGetter interface {
	CurrentUser() models.Session
	GetUserEvents(userID string) ([]models.Event, error)
	GetUserPosts(userID string) ([]models.Post, error)
}

func New(log *slog.Logger, getter DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getDashboard.New"

		log = log.With(slog.String("op", op))

		user, loggedIn := getter.CurrentUser().User()
		if !loggedIn {
			log.Info("dashboard request while logged out")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("login required"))
			return
		}

		log = log.With(slog.String("user_id", user.ID))

		events, err := getter.GetUserEvents(user.ID)
		if err != nil {
			log.Error("failed to get user events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get dashboard"))
			return
		}

		posts, err := getter.GetUserPosts(user.ID)
		if err != nil {
			log.Error("failed to get user posts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get dashboard"))
			return
		}

		log.Info("dashboard retrieved", slog.Int("events", len(events)), slog.Int("posts", len(posts)))

		render.JSON(w, r, DashboardResponse{
			Response: response.OK(),
			Events:   events,
			Posts:    posts,
		})
	}
}
