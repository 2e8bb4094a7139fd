package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Respond traduz o erro de um caso de uso para o status HTTP correspondente.
func Respond(c *gin.Context, err error) {
	var (
		be BusinessError
		nf NotFoundError
	)

	switch {
	case errors.As(err, &nf):
		NotFound(c, nf.Code, nf.Message)
	case errors.As(err, &be):
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		Write(c, be.HTTPStatus(), be.Code, msg)
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "not_found", "Registro não encontrado.")
	default:
		if field, ok := UniqueViolation(err); ok {
			Conflict(c, "unique_violation", fmt.Sprintf("Campo único já existe: %s", field))
			return
		}
		if IsForeignKeyViolation(err) {
			BadRequest(c, "invalid_reference", "Registro relacionado não encontrado.")
			return
		}
		if IsCheckViolation(err) {
			BadRequest(c, "constraint_violation", "Valor fora do permitido.")
			return
		}
		_ = c.Error(err)
		Write(c, http.StatusInternalServerError, "internal_error", "Erro interno.")
	}
}
