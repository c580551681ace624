package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelService/internal/api/handlers"
	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/service/packages"
)

const msgPackageNotFound = "package not found"

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

// DepartureDateResponse HTTP модель даты вылета
type DepartureDateResponse struct {
	Date           string `json:"date"`
	ReturnDate     string `json:"return_date"`
	PricePerPerson int64  `json:"price_per_person"`
	Available      bool   `json:"available"`
}

// Handle GET /api/v1/packages/{packageId}/departure-dates?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID := mux.Vars(r)["packageId"]
	month := r.URL.Query().Get("month")

	dates, err := h.service.AvailableDates(r.Context(), packageID, month)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id}/departure-dates - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)
		default:
			h.logger.Error("GET /packages/{id}/departure-dates - Failed: package_id=%s, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainDates(dates))
}

func fromDomainDates(dates []domain.DepartureDate) []DepartureDateResponse {
	result := make([]DepartureDateResponse, 0, len(dates))
	for _, d := range dates {
		result = append(result, DepartureDateResponse{
			Date:           d.Date,
			ReturnDate:     d.ReturnDate,
			PricePerPerson: d.PricePerPerson,
			Available:      d.Available,
		})
	}
	return result
}
