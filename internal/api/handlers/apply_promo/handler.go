package apply_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelService/internal/api/handlers"
	"github.com/m04kA/SMC-TravelService/internal/service/promo"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgCurrentTotalRequired = "current_total is required"
	msgCodeRequired         = "promo code is required"
	msgInvalidCode          = "invalid promo code"
)

type Handler struct {
	service PromoService
	logger  Logger
}

func NewHandler(service PromoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ApplyPromoRequest HTTP модель запроса применения промокода
type ApplyPromoRequest struct {
	Code         string `json:"code"`
	CurrentTotal *int64 `json:"current_total"`
}

// ApplyPromoResponse HTTP модель результата
type ApplyPromoResponse struct {
	NewTotal        int64 `json:"new_total"`
	DiscountApplied int64 `json:"discount_applied"`
}

// Handle POST /api/v1/promos/apply
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplyPromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promos/apply - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.CurrentTotal == nil {
		h.logger.Warn("POST /promos/apply - Missing current_total")
		handlers.RespondBadRequest(w, msgCurrentTotalRequired)
		return
	}

	result, err := h.service.Apply(r.Context(), req.Code, *req.CurrentTotal)
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrCodeRequired):
			h.logger.Warn("POST /promos/apply - Missing promo code")
			handlers.RespondBadRequest(w, msgCodeRequired)

		case errors.Is(err, promo.ErrInvalidCode):
			h.logger.Warn("POST /promos/apply - Invalid promo code: code=%s", req.Code)
			handlers.RespondBadRequest(w, msgInvalidCode)

		default:
			h.logger.Error("POST /promos/apply - Failed: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promos/apply - Applied: code=%s, discount=%d", req.Code, result.DiscountApplied)
	handlers.RespondJSON(w, http.StatusOK, ApplyPromoResponse{
		NewTotal:        result.NewTotal,
		DiscountApplied: result.DiscountApplied,
	})
}
