package impl

import (
	"context"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/domain/service"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type retailerService struct {
	retailerRepo  repository.RetailerRepository
	qrcodeService service.QRCodeService
	mediaStorage  service.MediaStorage
}

// RetailerServiceParams holds dependencies for RetailerService, injected by Fx.
type RetailerServiceParams struct {
	fx.In

	RetailerRepo  repository.RetailerRepository
	QRCodeService service.QRCodeService
	MediaStorage  service.MediaStorage
}

// NewRetailerService creates a new retailer catalog service instance
func NewRetailerService(params RetailerServiceParams) usecase.RetailerUsecase {
	return &retailerService{
		retailerRepo:  params.RetailerRepo,
		qrcodeService: params.QRCodeService,
		mediaStorage:  params.MediaStorage,
	}
}

// ListRetailers retrieves active retailers, optionally only featured ones.
func (s *retailerService) ListRetailers(ctx context.Context, featuredOnly bool) ([]*entity.Retailer, error) {
	var retailers []*entity.Retailer
	var err error

	if featuredOnly {
		retailers, err = s.retailerRepo.FindFeatured(ctx)
	} else {
		retailers, err = s.retailerRepo.FindActive(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list retailers")
	}

	for _, retailer := range retailers {
		s.resolveStorePhoto(ctx, retailer)
	}

	return retailers, nil
}

// GetRetailer retrieves a single retailer by ID.
func (s *retailerService) GetRetailer(ctx context.Context, id uuid.UUID) (*entity.Retailer, error) {
	retailer, err := s.retailerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrRetailerNotFound
		}

		return nil, errors.Wrap(err, "failed to find retailer by ID")
	}

	s.resolveStorePhoto(ctx, retailer)

	return retailer, nil
}

// GenerateConnectQR renders the PNG QR code for a retailer connect link.
func (s *retailerService) GenerateConnectQR(ctx context.Context, retailerID uuid.UUID) ([]byte, error) {
	// Only existing retailers get codes.
	if _, err := s.retailerRepo.FindByID(ctx, retailerID); err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrRetailerNotFound
		}

		return nil, errors.Wrap(err, "failed to find retailer by ID")
	}

	qrCode, err := s.qrcodeService.GenerateConnectQR(retailerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate connect QR")
	}

	return qrCode, nil
}

// resolveStorePhoto swaps a stored object key for a signed read URL.
// Records that already hold absolute URLs pass through untouched, and
// signing failures leave the key in place rather than dropping the field.
func (s *retailerService) resolveStorePhoto(ctx context.Context, retailer *entity.Retailer) {
	if retailer.StorePhoto == "" || isAbsoluteURL(retailer.StorePhoto) {
		return
	}

	if url, err := s.mediaStorage.SignedURL(ctx, retailer.StorePhoto, 0); err == nil {
		retailer.StorePhoto = url
	}
}

func isAbsoluteURL(s string) bool {
	return len(s) > 8 && (s[:7] == "http://" || s[:8] == "https://")
}
