package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelService/internal/api/handlers"
	"github.com/m04kA/SMC-TravelService/internal/domain"
	confirmBooking "github.com/m04kA/SMC-TravelService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRequiredFields     = "package_id, departure_date and room_config are required"
	msgPassportAck        = "passport validity acknowledgement is required"
	msgInvalidEmail       = "invalid email"
	msgInvalidPhone       = "invalid phone"
	msgCityRequired       = "city is required"
	msgGSTFields          = "gst number and company name are required when gst is enabled"
	msgIncompleteTrav     = "each traveller must have title, first_name, last_name"
	msgPackageNotFound    = "package not found"
	msgDateNotFound       = "departure date not found"
	msgDateNotAvailable   = "selected departure date is not available"
	msgInvalidRoomConfig  = "invalid room config"
	msgPromoCodeRequired  = "promo code is required"
	msgInvalidPromoCode   = "invalid promo code"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgRequiredFields)

		case errors.Is(err, confirmBooking.ErrMissingStep),
			errors.Is(err, confirmBooking.ErrStepsOutOfOrder):
			h.logger.Warn("POST /bookings - Step sequence invalid: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, confirmBooking.ErrPassportAckRequired):
			handlers.RespondBadRequest(w, msgPassportAck)

		case errors.Is(err, domain.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, domain.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, domain.ErrCityRequired):
			handlers.RespondBadRequest(w, msgCityRequired)

		case errors.Is(err, confirmBooking.ErrGSTFieldsRequired):
			handlers.RespondBadRequest(w, msgGSTFields)

		case errors.Is(err, confirmBooking.ErrTravellerCountMismatch):
			h.logger.Warn("POST /bookings - Traveller count mismatch: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, confirmBooking.ErrIncompleteTraveller):
			handlers.RespondBadRequest(w, msgIncompleteTrav)

		case errors.Is(err, confirmBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, confirmBooking.ErrDepartureDateNotFound):
			h.logger.Warn("POST /bookings - Departure date not found: package_id=%s, date=%s", req.PackageID, req.DepartureDate)
			handlers.RespondNotFound(w, msgDateNotFound)

		case errors.Is(err, confirmBooking.ErrDateNotAvailable):
			h.logger.Warn("POST /bookings - Date not available: package_id=%s, date=%s", req.PackageID, req.DepartureDate)
			handlers.RespondConflict(w, msgDateNotAvailable)

		case errors.Is(err, confirmBooking.ErrInvalidRoomConfig):
			h.logger.Warn("POST /bookings - Invalid room config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomConfig)

		case errors.Is(err, confirmBooking.ErrPromoCodeRequired):
			handlers.RespondBadRequest(w, msgPromoCodeRequired)

		case errors.Is(err, confirmBooking.ErrInvalidPromoCode):
			handlers.RespondBadRequest(w, msgInvalidPromoCode)

		default:
			h.logger.Error("POST /bookings - Failed to confirm booking: package_id=%s, error=%v", req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking confirmed: ref=%s, total=%d", result.BookingRef, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
