package getAllPosts

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"summitclub/internal/http-server/handlers/post/getAllPosts/mocks"
	"summitclub/internal/lib/logger/handlers/slogdiscard"
	"summitclub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetAllPostsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewPostsGetter(t)
		mockGetter.On("GetAllPosts").Return([]models.Post{
			{ID: "post-1", Title: "Welcome to the club", Category: models.CategoryGeneral, AuthorName: "Alex Rivera"},
		}, nil)

		rr := httptest.NewRecorder()
		New(logger, mockGetter).ServeHTTP(rr, httptest.NewRequest("GET", "/posts", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Welcome to the club")
	})

	t.Run("Empty board", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewPostsGetter(t)
		mockGetter.On("GetAllPosts").Return([]models.Post{}, nil)

		rr := httptest.NewRecorder()
		New(logger, mockGetter).ServeHTTP(rr, httptest.NewRequest("GET", "/posts", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"OK"`)
	})

	t.Run("Storage error", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewPostsGetter(t)
		mockGetter.On("GetAllPosts").Return(nil, errors.New("backend gone"))

		rr := httptest.NewRecorder()
		New(logger, mockGetter).ServeHTTP(rr, httptest.NewRequest("GET", "/posts", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), `"error":"failed to get posts"`)
	})
}
