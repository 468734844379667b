package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/handlers/middleware"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/i18n"
)

const fallbackLanguage = "en"

// T traduz key no idioma da requisição.
// Sem o middleware de i18n na cadeia, devolve a própria chave.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service, ok := c.Value(middleware.I18nServiceContextKey).(*i18n.Service)
	if !ok {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma resolvido pelo middleware, ou "en"
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return fallbackLanguage
}
