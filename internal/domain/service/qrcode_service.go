package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing.
type QRCodeService interface {
	// GenerateConnectQR generates a QR code encoding a retailer connect link.
	GenerateConnectQR(retailerID uuid.UUID) ([]byte, error)

	// ParseConnectQR parses QR code data and returns the retailer ID.
	ParseConnectQR(qrData string) (uuid.UUID, error)
}
