package httperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// BusinessError é uma falha de regra de negócio com código estável para o front.
// Status zero vale 400.
type BusinessError struct {
	Code    string
	Message string
	Status  int
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func (e BusinessError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadRequest
	}
	return e.Status
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func NewBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func NewUnauthorized(code, message string) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusUnauthorized}
}

func NewTooManyRequests(code, message string) error {
	return BusinessError{Code: code, Message: message, Status: http.StatusTooManyRequests}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// NotFoundError indica que a linha pedida (por id) não existe.
type NotFoundError struct {
	Code    string
	Message string
}

func (e NotFoundError) Error() string {
	return e.Code
}

func ErrNotFound(code, message string) error {
	return NotFoundError{Code: code, Message: message}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// MissingRow troca gorm.ErrRecordNotFound por um NotFoundError com código próprio.
func MissingRow(err error, code, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError{Code: code, Message: message}
	}
	return err
}

// MissingReference é o par de MissingRow para referências (cliente, barbeiro, serviço)
// que sumiram no meio da operação: vira BusinessError (400), não 404.
func MissingReference(err error, code, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return BusinessError{Code: code, Message: message}
	}
	return err
}
