package service

// QRCodeService renders QR codes linking to public storefront pages,
// used for printed menus and table tents.
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code pointing at the public
	// product page for the given slug.
	GenerateProductQR(slug string) ([]byte, error)
}
