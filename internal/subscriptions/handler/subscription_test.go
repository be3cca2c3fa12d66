package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subscriptionserrors "tramondo/internal/subscriptions/errors"
	"tramondo/internal/subscriptions/service"
	"tramondo/pkg/config"
	"tramondo/pkg/events"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
	"tramondo/pkg/validator"
)

type memorySubscriptionRepository struct {
	byEmail map[string]*model.EmailSubscription
}

func (m *memorySubscriptionRepository) Create(_ context.Context, subscription *model.EmailSubscription) error {
	subscription.ID = fmt.Sprintf("sub-%d", len(m.byEmail)+1)
	subscription.Subscribed = true
	m.byEmail[subscription.Email] = subscription
	return nil
}

func (m *memorySubscriptionRepository) FindByEmail(_ context.Context, email string) (*model.EmailSubscription, error) {
	if s, ok := m.byEmail[email]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", subscriptionserrors.ErrNotFound, email)
}

func newTestRouter(repo *memorySubscriptionRepository) *httprouter.Router {
	cfg := &config.Config{Log: logger.Discard()}
	svc := service.NewSubscriptionService(repo, events.Noop{}, validator.New(), cfg)

	router := httprouter.New()
	NewSubscriptionHandler(svc, cfg.Log).RegisterRoutes(router)
	return router
}

func subscribe(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubscribe_TwiceIsRejected(t *testing.T) {
	repo := &memorySubscriptionRepository{byEmail: map[string]*model.EmailSubscription{}}
	router := newTestRouter(repo)

	rec := subscribe(router, `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Message      string         `json:"message"`
		Subscription map[string]any `json:"subscription"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Successfully subscribed", body.Message)
	assert.Equal(t, "a@b.com", body.Subscription["email"])
	assert.Equal(t, true, body.Subscription["subscribed"])

	rec = subscribe(router, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email already subscribed"}`, rec.Body.String())
	assert.Len(t, repo.byEmail, 1)
}

func TestSubscribe_InvalidBody(t *testing.T) {
	repo := &memorySubscriptionRepository{byEmail: map[string]*model.EmailSubscription{}}
	router := newTestRouter(repo)

	rec := subscribe(router, `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email address","details":{"email":"must be a valid email address"}}`, rec.Body.String())

	rec = subscribe(router, `[`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.byEmail)
}
