package usecase

import (
	"context"

	"guildhall/internal/domain/entity"

	"github.com/google/uuid"
)

// RetailerUsecase defines the interface for retailer catalog use cases
type RetailerUsecase interface {
	// ListRetailers retrieves active retailers, optionally only featured ones.
	ListRetailers(ctx context.Context, featuredOnly bool) ([]*entity.Retailer, error)

	// GetRetailer retrieves a single retailer by ID.
	GetRetailer(ctx context.Context, id uuid.UUID) (*entity.Retailer, error)

	// GenerateConnectQR renders the PNG QR code for a retailer connect link.
	GenerateConnectQR(ctx context.Context, retailerID uuid.UUID) ([]byte, error)
}
