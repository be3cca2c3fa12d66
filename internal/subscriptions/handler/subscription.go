package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tramondo/internal/subscriptions/service"
	httputil "tramondo/pkg/http"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
)

type SubscribeResponse struct {
	Message      string                   `json:"message"`
	Subscription *model.EmailSubscription `json:"subscription"`
}

type SubscriptionHandler struct {
	service service.SubscriptionService
	log     *logger.Logger
}

func NewSubscriptionHandler(service service.SubscriptionService, log *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		log:     log,
	}
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.SubscriptionInput
	if err := httputil.DecodeJSON(r, &input, "Invalid email address"); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Subscribe", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	subscription, err := h.service.Subscribe(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Subscribe", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	resp := SubscribeResponse{
		Message:      "Successfully subscribed",
		Subscription: subscription,
	}
	if err := httputil.WriteCreated(w, resp); err != nil {
		h.log.Error("failed to write created response", "handler", "Subscribe", "operation", "WriteCreated", "error", err)
	}
}

func (h *SubscriptionHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/subscriptions", h.Subscribe)
}
