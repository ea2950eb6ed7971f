package registerForEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"summitclub/internal/http-server/handlers/event/registerForEvent/mocks"
	"summitclub/internal/lib/logger/handlers/slogdiscard"
	"summitclub/internal/models"
	"summitclub/internal/storage/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterForEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	member := models.User{ID: "user-1", FirstName: "Alex", LastName: "Rivera", Email: "alex@example.com"}

	validBody := `{"firstName": "Alex", "lastName": "Rivera", "email": "alex@example.com", "phone": "(555) 123-4567"}`
	validForm := models.RegistrationForm{
		FirstName: "Alex",
		LastName:  "Rivera",
		Email:     "alex@example.com",
		Phone:     "(555) 123-4567",
	}

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(mock *mocks.EventRegistrar)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			eventID:     "2",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventRegistrar) {
				mock.On("CurrentUser").Return(models.LoggedIn(member))
				mock.On("RegisterForEvent", 2, validForm, member).
					Return(models.Registration{EventID: 2, UserID: member.ID}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"eventId":2`)
			},
		},
		{
			name:           "Missing event ID",
			eventID:        "",
			requestBody:    validBody,
			mockSetup:      func(mock *mocks.EventRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"event id is required"}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "two",
			requestBody:    validBody,
			mockSetup:      func(mock *mocks.EventRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:        "Logged out",
			eventID:     "2",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventRegistrar) {
				mock.On("CurrentUser").Return(models.LoggedOut())
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"login required"}`,
		},
		{
			name:        "Invalid JSON",
			eventID:     "2",
			requestBody: `not json`,
			mockSetup: func(mock *mocks.EventRegistrar) {
				mock.On("CurrentUser").Return(models.LoggedIn(member))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Missing first name",
			eventID:     "2",
			requestBody: `{"lastName": "Rivera", "email": "alex@example.com"}`,
			mockSetup: func(mock *mocks.EventRegistrar) {
				mock.On("CurrentUser").Return(models.LoggedIn(member))
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "FirstName")
			},
		},
		{
			name:        "Invalid email",
			eventID:     "2",
			requestBody: `{"firstName": "Alex", "lastName": "Rivera", "email": "not-an-email"}`,
			mockSetup: func(mock *mocks.EventRegistrar) {
				mock.On("CurrentUser").Return(models.LoggedIn(member))
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:        "Already registered",
			eventID:     "2",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventRegistrar) {
				mock.On("CurrentUser").Return(models.LoggedIn(member))
				mock.On("RegisterForEvent", 2, validForm, member).
					Return(models.Registration{}, session.ErrAlreadyRegistered)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"already registered for this event"}`,
		},
		{
			name:        "Event not found",
			eventID:     "99",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventRegistrar) {
				mock.On("CurrentUser").Return(models.LoggedIn(member))
				mock.On("RegisterForEvent", 99, validForm, member).
					Return(models.Registration{}, session.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Event full",
			eventID:     "2",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventRegistrar) {
				mock.On("CurrentUser").Return(models.LoggedIn(member))
				mock.On("RegisterForEvent", 2, validForm, member).
					Return(models.Registration{}, session.ErrEventFull)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"no available spots"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRegistrar := mocks.NewEventRegistrar(t)
			tc.mockSetup(mockRegistrar)

			handler := New(logger, mockRegistrar)

			url := "/events/register"
			if tc.eventID != "" {
				url = "/events/" + tc.eventID + "/register"
			}

			req, err := http.NewRequest("POST", url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/events", func(r chi.Router) {
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/register", handler)
				})
				r.Post("/register", handler)
			})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
