package valueobjects

import (
	"errors"
	"net/mail"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email format")

// maxEmailLength segue o limite de caminho do RFC 5321
const maxEmailLength = 254

// Email é um endereço canônico: minúsculo, sem espaços e sem display name.
// Voluntários são únicos por email, então a comparação usa esta forma.
type Email struct {
	value  string
	domain string
}

// NewEmail normaliza e valida um endereço simples ("a@b.com")
func NewEmail(raw string) (Email, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || len(email) > maxEmailLength {
		return Email{}, ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return Email{}, ErrInvalidEmail
	}

	_, domain, _ := strings.Cut(email, "@")
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email, domain: domain}, nil
}

func (e Email) String() string {
	return e.value
}

// Domain retorna a parte depois do @
func (e Email) Domain() string {
	return e.domain
}

// Equals compara dois emails já normalizados
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
