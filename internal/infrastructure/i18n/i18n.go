package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"golang.org/x/text/language"
)

// catalog guarda as mensagens de um idioma já compiladas
type catalog struct {
	messages  map[string]string
	templates map[string]*template.Template // só mensagens com {{...}}
}

func newCatalog(messages map[string]string) (*catalog, error) {
	c := &catalog{
		messages:  messages,
		templates: make(map[string]*template.Template),
	}
	for key, msg := range messages {
		if !strings.Contains(msg, "{{") {
			continue
		}
		tmpl, err := template.New(key).Option("missingkey=zero").Parse(msg)
		if err != nil {
			return nil, fmt.Errorf("invalid template for %q: %w", key, err)
		}
		c.templates[key] = tmpl
	}
	return c, nil
}

// Service traduz mensagens a partir de catálogos JSON carregados uma vez.
// Depois de criado é somente leitura e pode ser compartilhado entre goroutines.
type Service struct {
	catalogs        map[string]*catalog
	languages       []string // idioma padrão primeiro, alinhado com matcher
	matcher         language.Matcher
	defaultLanguage string
}

// NewService carrega <localesDir>/<idioma>.json de fsys.
// O nome do arquivo deve ser uma tag BCP 47 (pt-BR, en, ...).
func NewService(fsys fs.FS, localesDir, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, path.Join(localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", localesDir)
	}

	s := &Service{
		catalogs:        make(map[string]*catalog, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		cat, err := newCatalog(messages)
		if err != nil {
			return nil, fmt.Errorf("locale file %s: %w", file, err)
		}
		s.catalogs[lang] = cat
	}

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	// O matcher devolve o primeiro idioma quando nada casa
	tags := make([]language.Tag, 0, len(s.catalogs))
	s.languages = append(s.languages, defaultLang)
	for lang := range s.catalogs {
		if lang != defaultLang {
			s.languages = append(s.languages, lang)
		}
	}
	for _, lang := range s.languages {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("locale file name %s is not a language tag: %w", lang, err)
		}
		tags = append(tags, tag)
	}
	s.matcher = language.NewMatcher(tags)

	return s, nil
}

// NewEmbeddedService cria o serviço a partir das traduções embutidas
func NewEmbeddedService(defaultLang string) (*Service, error) {
	return NewService(Locales, LocalesDir, defaultLang)
}

// T traduz key para lang, caindo no idioma padrão e por fim na própria chave.
// params[0] alimenta mensagens com template ({{.Field}}).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	cat, ok := s.lookup(lang, key)
	if !ok {
		cat, ok = s.lookup(s.defaultLanguage, key)
	}
	if !ok {
		return key
	}

	tmpl, isTemplate := cat.templates[key]
	if !isTemplate || len(params) == 0 {
		return cat.messages[key]
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return cat.messages[key]
	}
	return buf.String()
}

func (s *Service) lookup(lang, key string) (*catalog, bool) {
	cat, ok := s.catalogs[lang]
	if !ok {
		return nil, false
	}
	_, ok = cat.messages[key]
	return cat, ok
}

// Match escolhe o idioma suportado mais próximo das preferências, na ordem
// dada. Aceita tags simples ("en-US") ou um header Accept-Language inteiro.
// Retorna "" quando nenhuma preferência casa.
func (s *Service) Match(preferences ...string) string {
	var desired []language.Tag
	for _, pref := range preferences {
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}
	if len(desired) == 0 {
		return ""
	}

	_, index, confidence := s.matcher.Match(desired...)
	if confidence == language.No {
		return ""
	}
	return s.languages[index]
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados, o padrão primeiro
func (s *Service) GetSupportedLanguages() []string {
	return append([]string(nil), s.languages...)
}

// IsLanguageSupported verifica se existe catálogo exatamente para lang
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}
