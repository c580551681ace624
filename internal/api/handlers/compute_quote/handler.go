package compute_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelService/internal/api/handlers"
	computeQuote "github.com/m04kA/SMC-TravelService/internal/usecase/compute_quote"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRequiredFields     = "package_id, departure_date and room_config are required"
	msgPackageNotFound    = "package not found"
	msgDateNotFound       = "departure date not found"
	msgDateNotAvailable   = "selected departure date is not available"
	msgInvalidRoomConfig  = "invalid room config"
)

type Handler struct {
	useCase ComputeQuoteUseCase
	logger  Logger
}

func NewHandler(useCase ComputeQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, computeQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Missing required fields")
			handlers.RespondBadRequest(w, msgRequiredFields)

		case errors.Is(err, computeQuote.ErrPackageNotFound):
			h.logger.Warn("POST /quotes - Package not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, computeQuote.ErrDepartureDateNotFound):
			h.logger.Warn("POST /quotes - Departure date not found: package_id=%s, date=%s", req.PackageID, req.DepartureDate)
			handlers.RespondNotFound(w, msgDateNotFound)

		case errors.Is(err, computeQuote.ErrDateNotAvailable):
			h.logger.Warn("POST /quotes - Date not available: package_id=%s, date=%s", req.PackageID, req.DepartureDate)
			handlers.RespondConflict(w, msgDateNotAvailable)

		case errors.Is(err, computeQuote.ErrInvalidRoomConfig):
			h.logger.Warn("POST /quotes - Invalid room config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomConfig)

		default:
			h.logger.Error("POST /quotes - Failed to compute quote: package_id=%s, error=%v", req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: package_id=%s, total=%d", req.PackageID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
