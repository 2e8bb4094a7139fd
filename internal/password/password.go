package password

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

// Cost usado desde o primeiro cadastro; hashes antigos continuam válidos.
const Cost = 10

// MaxBytes é o limite do bcrypt; acima disso GenerateFromPassword recusa.
const MaxBytes = 72

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", httperr.NewBusiness("password_too_long", "Senha deve ter no máximo 72 bytes.")
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IsHashed reconhece credenciais já em bcrypt. O resto é senha legada em texto puro.
func IsHashed(stored string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(stored, p) {
			return true
		}
	}
	return false
}

func Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
