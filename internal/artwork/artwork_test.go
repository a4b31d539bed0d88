// internal/artwork/artwork_test.go
package artwork

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestVerifyAcceptsPNG(t *testing.T) {
	format, err := Verify(pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "image/png", format.MIME)
	assert.Equal(t, "png", format.Ext)
}

func TestVerifyRejectsText(t *testing.T) {
	_, err := Verify([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestVerifyRejectsTruncatedImage(t *testing.T) {
	content := pngBytes(t)
	_, err := Verify(content[:12])
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestCheckDeclared(t *testing.T) {
	jpeg := Format{MIME: "image/jpeg", Ext: "jpg"}
	assert.NoError(t, CheckDeclared("image/jpg", jpeg))
	assert.NoError(t, CheckDeclared("", jpeg))
	assert.ErrorIs(t, CheckDeclared("image/png", jpeg), ErrUnsupportedType)
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(15<<20, MaxSizeMB))
	assert.ErrorIs(t, CheckSize(15<<20+1, MaxSizeMB), ErrTooLarge)
}

func TestFileName(t *testing.T) {
	name := FileName(7, 3, "webp")
	assert.Regexp(t, regexp.MustCompile(`^arte_pedido_7_produto_3_[0-9a-f]{32}\.webp$`), name)
}
