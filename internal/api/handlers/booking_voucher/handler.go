package booking_voucher

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelService/internal/api/handlers"
	"github.com/m04kA/SMC-TravelService/internal/service/bookings"
)

const msgNotFound = "booking not found"

type Handler struct {
	bookings BookingService
	voucher  VoucherService
	logger   Logger
}

func NewHandler(bookingSvc BookingService, voucherSvc VoucherService, logger Logger) *Handler {
	return &Handler{
		bookings: bookingSvc,
		voucher:  voucherSvc,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings/{bookingRef}/voucher
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["bookingRef"]

	booking, err := h.bookings.GetByRef(r.Context(), ref)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{ref}/voucher - Booking not found: ref=%s", ref)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{ref}/voucher - Failed to get booking: ref=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	pdf, err := h.voucher.Generate(r.Context(), booking)
	if err != nil {
		h.logger.Error("GET /bookings/{ref}/voucher - Failed to render voucher: ref=%s, error=%v", ref, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/{ref}/voucher - Voucher rendered: ref=%s", ref)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=voucher-%s.pdf", ref))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
