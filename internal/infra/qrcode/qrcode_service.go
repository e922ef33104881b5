// Package qrcode generates and parses retailer connect QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"guildhall/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RetailerID string `json:"retailer_id"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateConnectQR generates a QR code encoding a retailer connect link.
func (s *qrcodeService) GenerateConnectQR(retailerID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		RetailerID: retailerID.String(),
		Type:       "connect",
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/retailers/%s/connect", s.baseURL, retailerID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseConnectQR parses QR code data and returns the retailer ID.
func (s *qrcodeService) ParseConnectQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "connect" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	retailerID, err := uuid.Parse(data.RetailerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse retailer ID: %w", err)
	}

	return retailerID, nil
}
