package logoutUser

import (
	"log/slog"
	"net/http"

	"summitclub/internal/lib/api/response"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionCloser
type SessionCloser interface {
	Logout()
}

func New(log *slog.Logger, closer SessionCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logoutUser.New"

		log = log.With(slog.String("op", op))

		closer.Logout()

		log.Info("session cleared")

		render.JSON(w, r, response.OK())
	}
}
