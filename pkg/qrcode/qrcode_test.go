package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiboux/totp-online/pkg/qrcode"
)

const uri = "otpauth://totp/GitHub:alice?secret=JBSWY3DPEHPK3PXP&issuer=GitHub"

func TestGenerate(t *testing.T) {
	t.Run("default size", func(t *testing.T) {
		data, err := qrcode.Generate(uri, 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
	})

	t.Run("custom size", func(t *testing.T) {
		data, err := qrcode.Generate(uri, 128)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := qrcode.Generate("", 256)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})

	t.Run("rejects invalid size", func(t *testing.T) {
		_, err := qrcode.Generate(uri, -1)
		assert.ErrorIs(t, err, qrcode.ErrInvalidSize)

		_, err = qrcode.Generate(uri, 4096)
		assert.ErrorIs(t, err, qrcode.ErrInvalidSize)
	})
}

func TestGenerateBase64Image(t *testing.T) {
	dataURI, err := qrcode.GenerateBase64Image(uri, 0)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dataURI, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)

	_, err = qrcode.GenerateBase64Image("", 0)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}
