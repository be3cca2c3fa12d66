package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tramondo/internal/destinations/service"
	httputil "tramondo/pkg/http"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
)

// TourLister lists the tours that belong to one destination.
type TourLister interface {
	GetByDestination(ctx context.Context, destinationID string) ([]*model.Tour, error)
}

type DestinationHandler struct {
	service service.DestinationService
	tours   TourLister
	log     *logger.Logger
}

func NewDestinationHandler(service service.DestinationService, tours TourLister, log *logger.Logger) *DestinationHandler {
	return &DestinationHandler{
		service: service,
		tours:   tours,
		log:     log,
	}
}

func (h *DestinationHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	destinations, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, destinations); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DestinationHandler) GetBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	destination, err := h.service.GetBySlug(r.Context(), ps.ByName("slug"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetBySlug", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, destination); err != nil {
		h.log.Error("failed to write success response", "handler", "GetBySlug", "operation", "WriteSuccess", "error", err)
	}
}

// GetTours answers 404 for an unknown slug before any tour is read.
func (h *DestinationHandler) GetTours(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	destination, err := h.service.GetBySlug(r.Context(), ps.ByName("slug"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetTours", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	tours, err := h.tours.GetByDestination(r.Context(), destination.ID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetTours", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tours); err != nil {
		h.log.Error("failed to write success response", "handler", "GetTours", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DestinationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.DestinationInput
	if err := httputil.DecodeJSON(r, &input, "Invalid destination data"); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	destination, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, destination); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *DestinationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/destinations", h.GetAll)
	router.POST("/api/destinations", h.Create)
	router.GET("/api/destinations/:slug", h.GetBySlug)
	router.GET("/api/destinations/:slug/tours", h.GetTours)
}
