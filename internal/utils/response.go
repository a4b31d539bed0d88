// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/atelier-gestor/atelier/internal/i18n"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope the frontend understands. Detail is either
// a message or a list of ValidationError.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorResponse(c *gin.Context, statusCode int, detail interface{}) {
	c.JSON(statusCode, ErrorBody{Detail: detail})
}

func BadRequestResponse(c *gin.Context, message string) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyValidationInvalid, "request")
	}
	ErrorResponse(c, http.StatusBadRequest, message)
}

// NotFoundResponse answers 404 with the translated message for key.
func NotFoundResponse(c *gin.Context, key string, args ...interface{}) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusNotFound, i18n.T(lang, key, args...))
}

func TooManyRequestsResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusTooManyRequests, i18n.T(lang, i18n.KeyRateLimited))
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = i18n.T(GetLangFromContext(c), i18n.KeyInternalError)
	}
	ErrorResponse(c, http.StatusInternalServerError, message)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	ErrorResponse(c, http.StatusUnprocessableEntity, errors)
}

func PaginatedResponse[T any](c *gin.Context, data []T, total int64) {
	SetPaginationHeaders(c, total)
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, gin.H{
		"dados": data,
		"total": total,
	})
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.LangPortuguese
}
