package getAllPosts

import (
	"log/slog"
	"net/http"

	"summitclub/internal/lib/api/response"
	"summitclub/internal/lib/logger/sl"
	"summitclub/internal/models"

	"github.com/go-chi/render"
)

type PostsResponse struct {
	response.Response
	Posts []models.Post `json:"posts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostsGetter
type PostsGetter interface {
	GetAllPosts() ([]models.Post, error)
}

func New(log *slog.Logger, postsGetter PostsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.post.getAllPosts.New"

		log = log.With(slog.String("op", op))

		posts, err := postsGetter.GetAllPosts()
		if err != nil {
			log.Error("failed to get posts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get posts"))
			return
		}

		log.Info("posts retrieved successfully", slog.Int("count", len(posts)))

		render.JSON(w, r, PostsResponse{
			Response: response.OK(),
			Posts:    posts,
		})
	}
}
