package packages

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/infra/catalog"
	"github.com/m04kA/SMC-TravelService/internal/service/packages/models"
)

// Service read-path сервис справочника пакетов: поиск, детали,
// доступные даты вылета
type Service struct {
	catalog Catalog
	logger  Logger
}

// NewService создает новый экземпляр сервиса пакетов
func NewService(cat Catalog, logger Logger) *Service {
	return &Service{
		catalog: cat,
		logger:  logger,
	}
}

// Search фильтрует пакеты по городу вылета, направлению, длительности и дате
// вылета. Все фильтры опциональны; город и направление сравниваются как
// подстроки без учета регистра. Traveller count принимается, но не
// фильтрует (поведение исходного API).
func (s *Service) Search(ctx context.Context, filter models.SearchFilter) []models.PackageSummary {
	leavingFrom := strings.ToLower(strings.TrimSpace(filter.LeavingFrom))
	destination := strings.ToLower(strings.TrimSpace(filter.Destination))

	results := make([]models.PackageSummary, 0)

	for _, pkg := range s.catalog.ListPackages(ctx) {
		if leavingFrom != "" && !strings.Contains(strings.ToLower(pkg.LeavingFrom), leavingFrom) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(pkg.Destination), destination) {
			continue
		}
		if filter.Duration != "" && strconv.Itoa(pkg.Duration) != filter.Duration {
			continue
		}
		if filter.LeavingOn != "" && !departsOn(pkg, filter.LeavingOn) {
			continue
		}
		results = append(results, models.FromDomainSummary(pkg))
	}

	s.logger.Info("Search: %d packages matched", len(results))
	return results
}

// GetDetails возвращает подробное описание пакета
func (s *Service) GetDetails(ctx context.Context, id string) (*models.PackageDetails, error) {
	pkg, err := s.catalog.GetPackage(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrPackageNotFound) {
			s.logger.Warn("GetDetails: package id=%s not found", id)
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	details := models.FromDomainDetails(pkg)
	return &details, nil
}

// AvailableDates возвращает даты вылета пакета, опционально отфильтрованные
// по месяцу (YYYY-MM)
func (s *Service) AvailableDates(ctx context.Context, id string, month string) ([]domain.DepartureDate, error) {
	pkg, err := s.catalog.GetPackage(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrPackageNotFound) {
			s.logger.Warn("AvailableDates: package id=%s not found", id)
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	results := make([]domain.DepartureDate, 0, len(pkg.DepartureDates))
	for _, d := range pkg.DepartureDates {
		date, err := time.Parse(domain.DateFormat, d.Date)
		if err != nil {
			s.logger.Warn("AvailableDates: package id=%s has malformed date %q", id, d.Date)
			continue
		}
		if month != "" && date.Format(domain.MonthFormat) != month {
			continue
		}
		results = append(results, d)
	}

	return results, nil
}

// departsOn проверяет, что пакет имеет вылет в указанную дату
func departsOn(pkg *domain.Package, leavingOn string) bool {
	wanted, err := time.Parse(domain.DateFormat, leavingOn)
	if err != nil {
		return false
	}
	for _, d := range pkg.DepartureDates {
		date, err := time.Parse(domain.DateFormat, d.Date)
		if err != nil {
			continue
		}
		if date.Equal(wanted) {
			return true
		}
	}
	return false
}
