// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/atelier-gestor/atelier/internal/i18n"
)

func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if defaultLang == "" {
		defaultLang = i18n.LangPortuguese
	}

	return func(c *gin.Context) {
		lang := defaultLang

		// Handle cases like "pt-BR,pt;q=0.9,en;q=0.8"
		if header := c.GetHeader("Accept-Language"); header != "" {
			langs := strings.Split(header, ",")
			firstLang := strings.TrimSpace(strings.Split(langs[0], ";")[0])
			switch strings.ToLower(strings.ReplaceAll(firstLang, "_", "-")) {
			case "pt", "pt-br", "pt-pt":
				lang = i18n.LangPortuguese
			case "en", "en-us", "en-gb":
				lang = i18n.LangEnglish
			}
		}

		// Set language in context
		c.Set("lang", lang)
		c.Next()
	}
}
