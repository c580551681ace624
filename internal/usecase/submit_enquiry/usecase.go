package submit_enquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/infra/catalog"
)

// Request модель запроса на создание заявки
type Request struct {
	Contact   domain.ContactInfo
	PackageID string
}

// Response модель ответа с созданной заявкой
type Response struct {
	Ref string
}

// UseCase создание контактной заявки по пакету
type UseCase struct {
	catalog     Catalog
	store       EnquiryStore
	refProvider RefProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cat Catalog, store EnquiryStore, logger Logger) *UseCase {
	return &UseCase{
		catalog:     cat,
		store:       store,
		refProvider: &UUIDRefProvider{},
		logger:      logger,
	}
}

// WithRefProvider подменяет генератор ссылок (используется в тестах)
func (uc *UseCase) WithRefProvider(p RefProvider) *UseCase {
	uc.refProvider = p
	return uc
}

// Execute выполняет создание заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Контактные данные
	if err := req.Contact.Validate(); err != nil {
		uc.logger.Warn("SubmitEnquiry: contact validation failed: %v", err)
		return nil, err
	}

	// 2. Пакет должен существовать
	if req.PackageID == "" {
		uc.logger.Warn("SubmitEnquiry: empty package_id")
		return nil, ErrPackageRequired
	}
	if _, err := uc.catalog.GetPackage(ctx, req.PackageID); err != nil {
		if errors.Is(err, catalog.ErrPackageNotFound) {
			uc.logger.Warn("SubmitEnquiry: package id=%s not found", req.PackageID)
			return nil, ErrPackageRequired
		}
		uc.logger.Error("SubmitEnquiry: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	// 3. Сохраняем заявку
	created, err := uc.store.Create(ctx, &domain.Enquiry{
		Ref:       uc.refProvider.NewRef(),
		Contact:   req.Contact,
		PackageID: req.PackageID,
	})
	if err != nil {
		uc.logger.Error("SubmitEnquiry: failed to store enquiry: %v", err)
		return nil, fmt.Errorf("%w: failed to store enquiry: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitEnquiry: enquiry created ref=%s package=%s", created.Ref, created.PackageID)
	return &Response{Ref: created.Ref}, nil
}
