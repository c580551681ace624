package submit_enquiry

import (
	"context"

	submitEnquiry "github.com/m04kA/SMC-TravelService/internal/usecase/submit_enquiry"
)

type SubmitEnquiryUseCase interface {
	Execute(ctx context.Context, req *submitEnquiry.Request) (*submitEnquiry.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
