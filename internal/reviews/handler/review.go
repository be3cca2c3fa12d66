package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tramondo/internal/reviews/service"
	httputil "tramondo/pkg/http"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
)

type ReviewHandler struct {
	service service.ReviewService
	log     *logger.Logger
}

func NewReviewHandler(service service.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

func (h *ReviewHandler) GetLatest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reviews, err := h.service.GetLatest(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetLatest", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reviews); err != nil {
		h.log.Error("failed to write success response", "handler", "GetLatest", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReviewHandler) GetByTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reviews, err := h.service.GetByTourSlug(r.Context(), ps.ByName("slug"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByTour", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reviews); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByTour", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.ReviewInput
	if err := httputil.DecodeJSON(r, &input, "Invalid review data"); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	review, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, review); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ReviewHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/reviews", h.GetLatest)
	router.POST("/api/reviews", h.Create)
	router.GET("/api/tours/:slug/reviews", h.GetByTour)
}
