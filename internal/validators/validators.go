package validators

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
)

// Tag usada nos requests para datas de agendamento.
const DateTimeTag = "isodatetime"

// RegisterAll registra as regras próprias da API no validator do gin.
func RegisterAll(v *validator.Validate) error {
	return v.RegisterValidation(DateTimeTag, isDateTime)
}

// isDateTime só verifica o formato; o fuso não muda se a string é legível.
func isDateTime(fl validator.FieldLevel) bool {
	_, ok := appointment.NormalizeDateTime(fl.Field().String(), time.UTC)
	return ok
}
