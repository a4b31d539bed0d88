// internal/artwork/artwork.go
package artwork

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	// Decoders for image.DecodeConfig
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// MaxSizeMB is the default artwork size limit.
const MaxSizeMB = 15

var (
	ErrUnsupportedType = errors.New("unsupported artwork format")
	ErrTooLarge        = errors.New("artwork too large")
	ErrCorrupted       = errors.New("artwork could not be decoded")
)

type Format struct {
	MIME string
	Ext  string
}

var allowed = []Format{
	{MIME: "image/jpeg", Ext: "jpg"},
	{MIME: "image/png", Ext: "png"},
	{MIME: "image/webp", Ext: "webp"},
}

// Detect sniffs the content and accepts JPEG, PNG and WEBP only.
func Detect(content []byte) (Format, error) {
	mtype := mimetype.Detect(content)
	for _, format := range allowed {
		if mtype.Is(format.MIME) {
			return format, nil
		}
	}
	return Format{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mtype.String())
}

// CheckDeclared rejects a file whose declared content type disagrees with
// the sniffed one. An empty declaration is accepted.
func CheckDeclared(declared string, format Format) error {
	declared = strings.ToLower(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]))
	if declared == "" || declared == "application/octet-stream" {
		return nil
	}
	if declared == "image/jpg" {
		declared = "image/jpeg"
	}
	if declared != format.MIME {
		return fmt.Errorf("%w: declared %s, got %s", ErrUnsupportedType, declared, format.MIME)
	}
	return nil
}

func CheckSize(size int64, maxMB int) error {
	if size > int64(maxMB)<<20 {
		return fmt.Errorf("%w: %d bytes, limit %dMB", ErrTooLarge, size, maxMB)
	}
	return nil
}

// Verify sniffs and then decodes the image header so truncated or fake
// files are refused.
func Verify(content []byte) (Format, error) {
	format, err := Detect(content)
	if err != nil {
		return Format{}, err
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(content)); err != nil {
		return Format{}, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return format, nil
}

// FileName builds the stored name of an item artwork.
func FileName(orderID, productID uint, ext string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("arte_pedido_%d_produto_%d_%s.%s", orderID, productID, id, ext)
}
