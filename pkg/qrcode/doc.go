// Package qrcode renders PNG QR codes, used to hand otpauth:// URIs to
// authenticator apps.
//
// Codes use medium error correction (about 15% recovery), enough for a screen
// scanned by a phone camera.
//
// Generate raw PNG bytes:
//
//	pngBytes, err := qrcode.Generate(uri, 256)
//
// Generate a data URI for direct HTML embedding:
//
//	dataURI, err := qrcode.GenerateBase64Image(uri, 0) // DefaultSize
//	// <img src="data:image/png;base64,...">
//
// Sizes are edge lengths in pixels. 256 scans reliably on most phones; the
// content of an otpauth URI stays well below the capacity limits.
package qrcode
