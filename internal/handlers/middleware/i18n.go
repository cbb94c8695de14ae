package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/academia-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey guarda o idioma resolvido da requisição
	LanguageContextKey = "language"
	// I18nServiceContextKey guarda o catálogo usado pelos helpers de dto
	I18nServiceContextKey = "i18n_service"

	// LanguageCookie é gravado pelo front-end quando o usuário troca o idioma
	LanguageCookie = "academia_lang"
)

// I18nMiddleware resolve o idioma de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
}

func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{i18nService: i18nService}
}

// DetectLanguage escolhe, nesta ordem: ?lang=, cookie academia_lang,
// Accept-Language e o idioma padrão. Variantes são normalizadas ("pt" vira "pt-BR").
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.resolve(c)

		c.Header("Content-Language", lang)
		c.Header("Vary", "Accept-Language")
		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

func (m *I18nMiddleware) resolve(c *gin.Context) string {
	candidates := []string{c.Query("lang")}
	if cookie, err := c.Cookie(LanguageCookie); err == nil {
		candidates = append(candidates, cookie)
	}
	candidates = append(candidates, c.GetHeader("Accept-Language"))

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if lang := m.i18nService.Match(candidate); lang != "" {
			return lang
		}
	}
	return m.i18nService.GetDefaultLanguage()
}
