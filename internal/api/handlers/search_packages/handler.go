package search_packages

import (
	"net/http"

	"github.com/m04kA/SMC-TravelService/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service PackagesService
	logger  Logger
}

func NewHandler(service PackagesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/packages/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	results := h.service.Search(r.Context(), req.ToFilter())

	h.logger.Info("POST /packages/search - %d packages matched", len(results))
	handlers.RespondJSON(w, http.StatusOK, FromSummaries(results))
}
