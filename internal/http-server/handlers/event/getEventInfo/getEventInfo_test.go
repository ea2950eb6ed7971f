package getEventInfo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"summitclub/internal/http-server/handlers/event/getEventInfo/mocks"
	"summitclub/internal/lib/logger/handlers/slogdiscard"
	"summitclub/internal/models"
	"summitclub/internal/storage/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventInfoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	event := models.Event{ID: 2, Title: "Badminton Tournament", Sport: models.SportBadminton, AvailableSpots: 4, MaxSpots: 16}
	regs := []models.Registration{
		{EventID: 2, UserID: "user-1", FirstName: "Alex", LastName: "Rivera", Email: "alex@example.com"},
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.EventGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			eventID: "2",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEventWithRegistrations", 2).Return(&event, regs, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "Badminton Tournament")
				assert.Contains(t, body, "alex@example.com")
			},
		},
		{
			name:           "Invalid event ID format",
			eventID:        "two",
			mockSetup:      func(mock *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"error":"invalid event id format"`)
			},
		},
		{
			name:    "Event not found",
			eventID: "99",
			mockSetup: func(mock *mocks.EventGetter) {
				mock.On("GetEventWithRegistrations", 99).Return(nil, nil, session.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"error":"event not found"`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/events/"+tc.eventID, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Get("/events/{id}", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
