package registerUser

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

type SignupRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type SignupResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRegistrar
type UserRegistrar interface {
	SignUp(form models.SignupForm) (models.User, error)
}

func New(log *slog.Logger, registrar UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.registerUser.New"

		log = log.With(slog.String("op", op))

		var req SignupRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("email", req.Email))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		user, err := registrar.SignUp(models.SignupForm{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Password:  req.Password,
		})
		if err != nil {
			log.Error("failed to sign up", sl.Err(err))

			switch {
			case errors.Is(err, session.ErrEmailTaken):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("email already registered"))
			case errors.Is(err, session.ErrMissingFields):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("required fields are missing"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to sign up"))
			}
			return
		}

		log.Info("account created", slog.String("user_id", user.ID))

		// never hand the credential material back out
		user.PasswordHash = ""
		user.Password = ""

		render.JSON(w, r, SignupResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
