package registerForEvent

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
	"github.com/go-playground/validator/v10"
)

type RegistrationRequest struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergencyContact"`
}

type RegistrationResponse struct {
	response.Response
	Registration models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRegistrar
type EventRegistrar interface {
	CurrentUser() models.Session
	RegisterForEvent(eventID int, form models.RegistrationForm, user models.User) (models.Registration, error)
}

func New(log *slog.Logger, registrar EventRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.registerForEvent.New"

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

		user, loggedIn := registrar.CurrentUser().User()
		if !loggedIn {
			log.Info("registration attempt while logged out")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("login required"))
			return
		}

		var req RegistrationRequest

		err = render.DecodeJSON(r.Body, &req)
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

		form := models.RegistrationForm{
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			Email:            req.Email,
			Phone:            req.Phone,
			EmergencyContact: req.EmergencyContact,
		}

		registration, err := registrar.RegisterForEvent(eventID, form, user)
		if err != nil {
			log.Error("failed to register for event", sl.Err(err))

			switch {
			case errors.Is(err, session.ErrAlreadyRegistered):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("already registered for this event"))
			case errors.Is(err, session.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, session.ErrEventFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available spots"))
			case errors.Is(err, session.ErrMissingFields):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("required fields are missing"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to register for event"))
			}
			return
		}

		log.Info("registered for event", slog.String("user_id", user.ID))

		responseOK(w, r, registration)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, registration models.Registration) {
	render.JSON(w, r, RegistrationResponse{
		Response:     response.OK(),
		Registration: registration,
	})
}
