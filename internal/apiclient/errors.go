// internal/apiclient/errors.go
package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/atelier-gestor/atelier/internal/i18n"
)

const maxErrorBody = 1 << 20

// APIError is the single shape every non-2xx response is turned into.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

type validationDetail struct {
	Loc []interface{} `json:"loc"`
	Msg string        `json:"msg"`
}

func newAPIError(resp *http.Response, lang string) *APIError {
	fallback := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &APIError{Status: resp.StatusCode, Detail: fallback}
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return &APIError{Status: resp.StatusCode, Detail: fallback}
	}

	return &APIError{Status: resp.StatusCode, Detail: detailMessage(body.Detail, lang)}
}

// detailMessage prefers the validation list, then a plain message.
func detailMessage(raw json.RawMessage, lang string) string {
	var list []validationDetail
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		messages := make([]string, 0, len(list))
		for _, d := range list {
			if field := fieldName(d.Loc); field != "" {
				messages = append(messages, fmt.Sprintf("%s: %s", field, d.Msg))
				continue
			}
			messages = append(messages, d.Msg)
		}
		return strings.Join(messages, "; ")
	}

	var message string
	if err := json.Unmarshal(raw, &message); err == nil && strings.TrimSpace(message) != "" {
		return message
	}

	return i18n.T(lang, i18n.KeyUIUnexpectedError)
}

func fieldName(loc []interface{}) string {
	if len(loc) == 0 {
		return ""
	}
	return fmt.Sprint(loc[len(loc)-1])
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Message is what the user sees for err. Transport failures are logged and
// replaced by a generic message.
func Message(err error, lang string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	logrus.WithError(err).Error("API call failed")
	return i18n.T(lang, i18n.KeyUIUnexpectedError)
}

// localeOf maps an Accept-Language tag to an i18n language.
func localeOf(tag string) string {
	if strings.HasPrefix(strings.ToLower(tag), "en") {
		return i18n.LangEnglish
	}
	return i18n.LangPortuguese
}
