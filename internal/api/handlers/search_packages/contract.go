package search_packages

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/service/packages/models"
)

type PackagesService interface {
	Search(ctx context.Context, filter models.SearchFilter) []models.PackageSummary
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
