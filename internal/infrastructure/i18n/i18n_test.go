package i18n

import (
	"sync"
	"testing"
	"testing/fstest"
)

// testLocales monta um catálogo em memória para os testes
func testLocales() fstest.MapFS {
	return fstest.MapFS{
		"en.json": {Data: []byte(`{
  "welcome": "Welcome, {{.Name}}!",
  "user_created": "User created successfully",
  "error.user_not_found": "User not found",
  "only.en": "English only"
}`)},
		"pt-BR.json": {Data: []byte(`{
  "welcome": "Bem-vindo, {{.Name}}!",
  "user_created": "Usuário criado com sucesso",
  "error.user_not_found": "Usuário não encontrado"
}`)},
		"es.json": {Data: []byte(`{
  "welcome": "¡Bienvenido, {{.Name}}!",
  "user_created": "Usuario creado exitosamente"
}`)},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	service, err := NewServiceFS(testLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}
	return service
}

func TestNewService(t *testing.T) {
	t.Run("carrega catálogos embutidos", func(t *testing.T) {
		service, err := NewService("", "en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		for _, lang := range []string{"en", "pt-BR"} {
			if !service.IsLanguageSupported(lang) {
				t.Errorf("esperava idioma %s suportado", lang)
			}
		}
		if got := service.T("pt-BR", "error.student_not_found"); got != "Aluno não encontrado" {
			t.Errorf("esperava 'Aluno não encontrado', obteve '%s'", got)
		}
	})

	t.Run("erro quando diretório não existe", func(t *testing.T) {
		if _, err := NewService("/diretorio/inexistente", "en"); err == nil {
			t.Error("esperava erro, obteve nil")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		if _, err := NewServiceFS(testLocales(), "fr"); err == nil {
			t.Error("esperava erro, obteve nil")
		}
	})

	t.Run("erro com JSON inválido", func(t *testing.T) {
		fsys := fstest.MapFS{"en.json": {Data: []byte(`{"a":`)}}
		if _, err := NewServiceFS(fsys, "en"); err == nil {
			t.Error("esperava erro, obteve nil")
		}
	})
}

func TestEmbeddedCatalogsHaveSameKeys(t *testing.T) {
	service, err := NewService("", "en")
	if err != nil {
		t.Fatal(err)
	}
	for key := range service.translations["en"] {
		if _, ok := service.translations["pt-BR"][key]; !ok {
			t.Errorf("chave '%s' ausente em pt-BR", key)
		}
	}
	for key := range service.translations["pt-BR"] {
		if _, ok := service.translations["en"][key]; !ok {
			t.Errorf("chave '%s' ausente em en", key)
		}
	}
}

func TestService_T(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name     string
		lang     string
		key      string
		params   []map[string]interface{}
		expected string
	}{
		{"mensagem simples em inglês", "en", "user_created", nil, "User created successfully"},
		{"mensagem simples em português", "pt-BR", "user_created", nil, "Usuário criado com sucesso"},
		{"mensagem com parâmetros", "en", "welcome", []map[string]interface{}{{"Name": "John"}}, "Welcome, John!"},
		{"mensagem com parâmetros em português", "pt-BR", "welcome", []map[string]interface{}{{"Name": "João"}}, "Bem-vindo, João!"},
		{"fallback para idioma padrão", "es", "error.user_not_found", nil, "User not found"},
		{"idioma desconhecido usa padrão", "fr", "only.en", nil, "English only"},
		{"retorna chave quando tradução não existe", "en", "nao.existe", nil, "nao.existe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.T(tt.lang, tt.key, tt.params...); got != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, got)
			}
		})
	}

	t.Run("reutiliza template compilado", func(t *testing.T) {
		first := service.T("es", "welcome", map[string]interface{}{"Name": "Ana"})
		second := service.T("es", "welcome", map[string]interface{}{"Name": "Luis"})
		if first != "¡Bienvenido, Ana!" || second != "¡Bienvenido, Luis!" {
			t.Errorf("obteve '%s' e '%s'", first, second)
		}
	})
}

func TestService_Match(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name       string
		acceptLang string
		expected   string
	}{
		{"idioma único suportado", "pt-BR", "pt-BR"},
		{"múltiplos idiomas, primeiro é suportado", "es,pt-BR;q=0.9,en;q=0.8", "es"},
		{"múltiplos idiomas, segundo é suportado", "fr,pt-BR;q=0.9,en;q=0.8", "pt-BR"},
		{"nenhum idioma suportado", "fr,de;q=0.9", ""},
		{"header vazio", "", ""},
		{"base sem região encontra variante regional", "pt", "pt-BR"},
		{"região não suportada cai para a base", "es-MX", "es"},
		{"região diferente da suportada", "pt-PT", "pt-BR"},
		{"curinga é ignorado", "*", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.Match(tt.acceptLang); got != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, got)
			}
		})
	}
}

func TestService_IsLanguageSupported(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		lang     string
		expected bool
	}{
		{"en", true},
		{"pt-BR", true},
		{"es", true},
		{"fr", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := service.IsLanguageSupported(tt.lang); got != tt.expected {
				t.Errorf("para idioma '%s', esperava %v, obteve %v", tt.lang, tt.expected, got)
			}
		})
	}
}

func TestService_ThreadSafety(t *testing.T) {
	service := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = service.T("en", "welcome", map[string]interface{}{"Name": "Test"})
		}()
		go func() {
			defer wg.Done()
			_ = service.Match("pt,en;q=0.5")
		}()
		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("en")
		}()
	}
	wg.Wait()
}
