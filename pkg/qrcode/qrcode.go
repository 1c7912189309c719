package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the edge length in pixels used when size is 0.
const DefaultSize = 256

const maxSize = 2048

var (
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	ErrInvalidSize  = errors.New("qrcode: size must be between 1 and 2048")
)

// Generate encodes content as a PNG QR code with medium error correction.
func Generate(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 || size > maxSize {
		return nil, ErrInvalidSize
	}

	png, err := goqrcode.Encode(content, goqrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode: %w", err)
	}
	return png, nil
}

// GenerateBase64Image returns the PNG QR code as a data URI for an <img> src.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
