package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey guarda o idioma resolvido da requisição
	LanguageContextKey = "language"
	// I18nServiceContextKey guarda o *i18n.Service para os helpers de dto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware resolve o idioma das mensagens de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{i18nService: i18nService}
}

// DetectLanguage escolhe, nesta ordem: ?lang=, Accept-Language e o idioma padrão.
// O idioma escolhido volta no header Content-Language.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.i18nService.Resolve(c.Query("lang"))
		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

type weightedTag struct {
	tag    string
	weight float64
}

// parseAcceptLanguage devolve o idioma suportado de maior peso.
// Empates mantêm a ordem do header; q=0 significa "não aceito".
func (m *I18nMiddleware) parseAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}

	var tags []weightedTag
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}

		weight := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil {
				continue
			}
			weight = parsed
		}
		if weight <= 0 {
			continue
		}
		tags = append(tags, weightedTag{tag: tag, weight: weight})
	}

	sort.SliceStable(tags, func(i, j int) bool { return tags[i].weight > tags[j].weight })

	for _, t := range tags {
		if resolved := m.i18nService.Resolve(t.tag); resolved != "" {
			return resolved
		}
	}
	return ""
}
