package get_package_details

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/service/packages/models"
)

type PackagesService interface {
	GetDetails(ctx context.Context, id string) (*models.PackageDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
