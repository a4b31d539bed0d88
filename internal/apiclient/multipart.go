// internal/apiclient/multipart.go
package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

// Multipart is a form body passed through to the API untouched.
type Multipart struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	closed bool
}

func NewMultipart() *Multipart {
	m := &Multipart{}
	m.writer = multipart.NewWriter(&m.buf)
	return m
}

func (m *Multipart) WriteFile(field, filename, contentType string, content []byte) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := m.writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create part %s: %w", field, err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("failed to write part %s: %w", field, err)
	}
	return nil
}

// Close writes the trailing boundary. It is safe to call more than once.
func (m *Multipart) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	return m.writer.Close()
}

func (m *Multipart) ContentType() string {
	return m.writer.FormDataContentType()
}

// Reader closes the body and returns its bytes.
func (m *Multipart) Reader() io.Reader {
	_ = m.Close()
	return bytes.NewReader(m.buf.Bytes())
}
