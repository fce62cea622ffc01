package service

import "github.com/google/uuid"

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateProfileQR renders a PNG QR code pointing at the public profile
	// page of the given supplier.
	GenerateProfileQR(supplierID uuid.UUID) ([]byte, error)
}
