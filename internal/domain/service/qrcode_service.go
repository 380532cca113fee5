package service

// QRCodeService renders venue deep links as QR codes so a desktop result can
// be handed off to a phone.
type QRCodeService interface {
	// GenerateLinkQR encodes url as a PNG image.
	GenerateLinkQR(url string) ([]byte, error)
}
