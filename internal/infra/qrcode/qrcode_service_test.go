package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, svc)
		})
	}
}

func TestGenerateConnectQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://guildhall.example.com")
	retailerID := uuid.New()

	pngBytes, err := svc.GenerateConnectQR(retailerID)
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestParseConnectQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")
	retailerID := uuid.New()

	data := QRCodeData{
		RetailerID: retailerID.String(),
		Type:       "connect",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := svc.ParseConnectQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, retailerID, parsed)
}

func TestParseConnectQR_InvalidType(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		RetailerID: uuid.New().String(),
		Type:       "promotion",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParseConnectQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestParseConnectQR_InvalidJSON(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	_, err := svc.ParseConnectQR("not json at all")
	assert.Error(t, err)
}

func TestParseConnectQR_InvalidUUID(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		RetailerID: "not-a-uuid",
		Type:       "connect",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParseConnectQR(string(jsonData))
	assert.Error(t, err)
}

func TestConnectQRRoundTrip(t *testing.T) {
	svc := NewQRCodeService(128, "H", "https://guildhall.example.com")
	retailerID := uuid.New()

	data := QRCodeData{
		RetailerID: retailerID.String(),
		Type:       "connect",
		URL:        "https://guildhall.example.com/retailers/" + retailerID.String() + "/connect",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := svc.ParseConnectQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, retailerID, parsed)
}
