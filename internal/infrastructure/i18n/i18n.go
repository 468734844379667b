package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// message é uma tradução; tmpl só existe quando o texto tem parâmetros
type message struct {
	text string
	tmpl *template.Template
}

// catalog mapeia chave -> mensagem de um idioma
type catalog map[string]message

// Service guarda os catálogos carregados. É somente leitura depois de
// NewService, então pode ser compartilhado entre goroutines sem lock.
type Service struct {
	translations    map[string]catalog
	defaultLanguage string
}

// NewDefaultService carrega os locales embutidos no binário
func NewDefaultService(defaultLang string) (*Service, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locales: %w", err)
	}
	return NewService(sub, defaultLang)
}

// NewService lê um arquivo <idioma>.json por idioma na raiz de fsys.
// Templates inválidos falham no carregamento, não na requisição.
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	s := &Service{
		translations:    make(map[string]catalog, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		cat, err := loadCatalog(fsys, file)
		if err != nil {
			return nil, err
		}
		s.translations[lang] = cat
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func loadCatalog(fsys fs.FS, file string) (catalog, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	cat := make(catalog, len(raw))
	for key, text := range raw {
		msg := message{text: text}
		if strings.Contains(text, "{{") {
			tmpl, err := template.New(key).Parse(text)
			if err != nil {
				return nil, fmt.Errorf("invalid template for %s in %s: %w", key, file, err)
			}
			msg.tmpl = tmpl
		}
		cat[key] = msg
	}
	return cat, nil
}

// T traduz key para lang, caindo no idioma padrão e por fim na própria chave.
// params[0] alimenta o template ({{.Field}}, {{.Param}}).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	msg, ok := s.lookup(lang, key)
	if !ok {
		msg, ok = s.lookup(s.defaultLanguage, key)
	}
	if !ok {
		return key
	}

	if msg.tmpl == nil || len(params) == 0 {
		return msg.text
	}

	var b strings.Builder
	if err := msg.tmpl.Execute(&b, params[0]); err != nil {
		return msg.text
	}
	return b.String()
}

func (s *Service) lookup(lang, key string) (message, bool) {
	msg, ok := s.translations[lang][key]
	return msg, ok
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se existe catálogo para o idioma exato
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.translations[lang]
	return ok
}

// Resolve devolve o idioma suportado para uma tag: exata, sem diferenciar caixa
// ou pela variação regional da mesma base ("pt" -> "pt-BR"). Vazio se nenhum.
func (s *Service) Resolve(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	if s.IsLanguageSupported(tag) {
		return tag
	}

	base := baseOf(tag)
	var regional string
	for _, lang := range s.GetSupportedLanguages() {
		if strings.EqualFold(lang, tag) {
			return lang
		}
		if regional == "" && baseOf(lang) == base {
			regional = lang
		}
	}
	return regional
}

func baseOf(tag string) string {
	base, _, _ := strings.Cut(tag, "-")
	return strings.ToLower(base)
}
