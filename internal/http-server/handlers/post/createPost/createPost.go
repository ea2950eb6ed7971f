package createPost

import (
	"errors"
	"log/slog"
	"net/http"

	"summitclub/internal/lib/api/response"
	"summitclub/internal/lib/logger/sl"
	"summitclub/internal/models"
	"summitclub/internal/storage/session"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type PostRequest struct {
	Title    string `json:"title" validate:"required,min=5"`
	Content  string `json:"content" validate:"required,min=10"`
	Category string `json:"category" validate:"required,oneof=general events training social equipment"`
}

type PostResponse struct {
	response.Response
	Post models.Post `json:"post"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostCreator
type PostCreator interface {
	CurrentUser() models.Session
	CreatePost(form models.PostForm, author models.User) (models.Post, error)
}

func New(log *slog.Logger, creator PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.post.createPost.New"

		log = log.With(slog.String("op", op))

		author, loggedIn := creator.CurrentUser().User()
		if !loggedIn {
			log.Info("post attempt while logged out")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("login required"))
			return
		}

		var req PostRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		post, err := creator.CreatePost(models.PostForm{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
		}, author)
		if err != nil {
			log.Error("failed to create post", sl.Err(err))

			switch {
			case errors.Is(err, session.ErrTitleTooShort),
				errors.Is(err, session.ErrContentTooShort),
				errors.Is(err, session.ErrInvalidCategory):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, session.ErrUnknownAuthor):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("login required"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create post"))
			}
			return
		}

		log.Info("post created", slog.String("post_id", post.ID))

		render.JSON(w, r, PostResponse{
			Response: response.OK(),
			Post:     post,
		})
	}
}
