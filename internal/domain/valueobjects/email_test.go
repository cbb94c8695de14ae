package valueobjects

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"email simples", "ana@academia.com", "ana@academia.com", false},
		{"normaliza caixa e espaços", "  Ana.Silva@Academia.COM ", "ana.silva@academia.com", false},
		{"subdomínio e sinal de mais", "joao+treino@mail.academia.com.br", "joao+treino@mail.academia.com.br", false},
		{"sem arroba", "ana.academia.com", "", true},
		{"sem domínio", "ana@", "", true},
		{"TLD curto", "ana@academia.c", "", true},
		{"vazio", "", "", true},
		{"longo demais", strings.Repeat("a", 250) + "@x.com", "", true},
		{"parte local longa demais", strings.Repeat("a", 65) + "@academia.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEmail) {
					t.Errorf("esperava ErrInvalidEmail, obteve %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("esperava sucesso, obteve erro: %v", err)
			}
			if email.String() != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, email.String())
			}
			if email.IsZero() {
				t.Error("esperava email preenchido")
			}
		})
	}

	if !(Email{}).IsZero() {
		t.Error("esperava Email vazio")
	}
}
