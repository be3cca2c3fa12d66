package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tramondo/internal/instagram/service"
	httputil "tramondo/pkg/http"
	"tramondo/pkg/logger"
)

type PostHandler struct {
	service service.PostService
	log     *logger.Logger
}

func NewPostHandler(service service.PostService, log *logger.Logger) *PostHandler {
	return &PostHandler{
		service: service,
		log:     log,
	}
}

func (h *PostHandler) GetActive(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	posts, err := h.service.GetActive(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetActive", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, posts); err != nil {
		h.log.Error("failed to write success response", "handler", "GetActive", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PostHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/instagram", h.GetActive)
}
