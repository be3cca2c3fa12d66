package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"

	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
)

type fakePostService struct {
	posts []*model.InstagramPost
	err   error
}

func (f *fakePostService) Create(_ context.Context, _ *model.InstagramPostInput) (*model.InstagramPost, error) {
	return nil, errors.New("not used")
}

func (f *fakePostService) GetActive(_ context.Context) ([]*model.InstagramPost, error) {
	return f.posts, f.err
}

func serve(svc *fakePostService) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewPostHandler(svc, logger.Discard()).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/instagram", nil))
	return rec
}

func TestGetActive(t *testing.T) {
	rec := serve(&fakePostService{posts: []*model.InstagramPost{
		{ID: "p1", ImageURL: "/a.jpg", Order: 1, Active: true},
	}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"p1","imageUrl":"/a.jpg","postUrl":null,"caption":null,"order":1,"active":true}]`, rec.Body.String())
}

func TestGetActive_InternalErrorIsGeneric(t *testing.T) {
	rec := serve(&fakePostService{err: apperrors.Internal("Failed to fetch instagram posts", errors.New("auth failed for user admin"))})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch instagram posts"}`, rec.Body.String())
}
