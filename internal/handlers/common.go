// internal/handlers/common.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/services"
	"github.com/atelier-gestor/atelier/internal/utils"
)

// bindJSON decodes and validates the body. On failure the 422 response is
// already written.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetBindingErrors(err))
		return false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req), utils.GetLangFromContext(c)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

func paramID(c *gin.Context, key string) (uint, bool) {
	id, verr := utils.ParamID(c, key)
	if verr != nil {
		utils.ValidationErrorResponse(c, []utils.ValidationError{*verr})
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to the matching status code.
func handleServiceError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	var serr *services.Error
	if errors.As(err, &serr) {
		message := i18n.T(lang, serr.Key, serr.Args...)
		switch {
		case errors.Is(serr, services.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, message)
		default:
			utils.BadRequestResponse(c, message)
		}
		return
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("Request failed")
	utils.InternalErrorResponse(c, "")
}
