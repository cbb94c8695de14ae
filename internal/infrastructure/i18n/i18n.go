// Package i18n carrega os catálogos de mensagens (en, pt-BR) e traduz chaves
// de erro e de validação para o idioma da requisição.
package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embedded embed.FS

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	templates       map[string]*template.Template
	defaultLanguage string
}

// NewService cria um novo serviço de i18n
// localesDir: diretório com os arquivos JSON; vazio usa os catálogos embutidos no binário
// defaultLang: idioma padrão (fallback)
func NewService(localesDir, defaultLang string) (*Service, error) {
	if localesDir == "" {
		sub, err := fs.Sub(embedded, "locales")
		if err != nil {
			return nil, err
		}
		return NewServiceFS(sub, defaultLang)
	}
	return NewServiceFS(os.DirFS(localesDir), defaultLang)
}

// NewServiceFS carrega os arquivos *.json da raiz de fsys
func NewServiceFS(fsys fs.FS, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		templates:       make(map[string]*template.Template),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}
		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}
	return s, nil
}

// T traduz uma chave para o idioma especificado
// Suporta interpolação de parâmetros usando templates Go ({{.Field}}, {{.Resource}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	message, resolved := s.lookup(lang, key)
	s.mu.RUnlock()

	if message == "" {
		return key
	}
	if len(params) == 0 || !strings.Contains(message, "{{") {
		return message
	}

	tmpl, err := s.template(resolved+"/"+key, message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

// lookup busca no idioma pedido e depois no padrão; devolve também o idioma usado
func (s *Service) lookup(lang, key string) (string, string) {
	if msg, ok := s.translations[lang][key]; ok {
		return msg, lang
	}
	if msg, ok := s.translations[s.defaultLanguage][key]; ok {
		return msg, s.defaultLanguage
	}
	return "", ""
}

// template devolve o template compilado da mensagem, compilando na primeira vez
func (s *Service) template(id, message string) (*template.Template, error) {
	s.mu.RLock()
	tmpl, ok := s.templates[id]
	s.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := template.New(id).Option("missingkey=zero").Parse(message)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.templates[id] = tmpl
	s.mu.Unlock()
	return tmpl, nil
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna lista de idiomas suportados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}

// Match escolhe o melhor idioma suportado para um header Accept-Language.
// Para cada entrada, na ordem do header, tenta o nome exato, depois a base
// (pt-BR -> pt) e por fim uma variante regional da base (pt -> pt-BR).
// Devolve "" quando nada é suportado.
func (s *Service) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return ""
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range strings.Split(acceptLanguage, ",") {
		lang := strings.TrimSpace(entry)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}
		if lang == "" || lang == "*" {
			continue
		}

		if _, ok := s.translations[lang]; ok {
			return lang
		}

		base := lang
		if idx := strings.Index(lang, "-"); idx != -1 {
			base = lang[:idx]
			if _, ok := s.translations[base]; ok {
				return base
			}
		}

		if regional := s.regionalVariant(base); regional != "" {
			return regional
		}
	}
	return ""
}

// regionalVariant devolve o primeiro idioma suportado (em ordem alfabética) com a base informada
func (s *Service) regionalVariant(base string) string {
	best := ""
	prefix := strings.ToLower(base) + "-"
	for lang := range s.translations {
		if strings.HasPrefix(strings.ToLower(lang), prefix) && (best == "" || lang < best) {
			best = lang
		}
	}
	return best
}
