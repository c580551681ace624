package get_package_details

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelService/internal/api/handlers"
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

// Handle GET /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID := mux.Vars(r)["packageId"]

	details, err := h.service.GetDetails(r.Context(), packageID)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id} - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)
		default:
			h.logger.Error("GET /packages/{id} - Failed to get package: package_id=%s, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDetails(details))
}
