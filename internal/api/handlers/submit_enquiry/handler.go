package submit_enquiry

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelService/internal/api/handlers"
	"github.com/m04kA/SMC-TravelService/internal/domain"
	submitEnquiry "github.com/m04kA/SMC-TravelService/internal/usecase/submit_enquiry"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmail       = "invalid email"
	msgInvalidPhone       = "invalid phone"
	msgCityRequired       = "city is required"
	msgPackageRequired    = "valid package_id is required"
)

type Handler struct {
	useCase SubmitEnquiryUseCase
	logger  Logger
}

func NewHandler(useCase SubmitEnquiryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// EnquiryRequest HTTP модель запроса заявки
type EnquiryRequest struct {
	ContactDetails ContactPayload `json:"contact_details"`
	PackageID      string         `json:"package_id"`
}

// ContactPayload HTTP модель контактных данных
type ContactPayload struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// EnquiryResponse HTTP модель ответа
type EnquiryResponse struct {
	Ref string `json:"ref"`
}

// Handle POST /api/v1/enquiries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EnquiryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /enquiries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitEnquiry.Request{
		Contact: domain.ContactInfo{
			Email: req.ContactDetails.Email,
			Phone: req.ContactDetails.Phone,
			City:  req.ContactDetails.City,
		},
		PackageID: req.PackageID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, domain.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, domain.ErrCityRequired):
			handlers.RespondBadRequest(w, msgCityRequired)

		case errors.Is(err, submitEnquiry.ErrPackageRequired):
			h.logger.Warn("POST /enquiries - Invalid package: package_id=%s", req.PackageID)
			handlers.RespondBadRequest(w, msgPackageRequired)

		default:
			h.logger.Error("POST /enquiries - Failed: package_id=%s, error=%v", req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /enquiries - Enquiry created: ref=%s", result.Ref)
	handlers.RespondJSON(w, http.StatusOK, EnquiryResponse{Ref: result.Ref})
}
