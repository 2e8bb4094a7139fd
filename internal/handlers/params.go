package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

// parseID lê um id de rota; só inteiros positivos valem.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// optionalID lê um filtro numérico da query string; vazio devolve nil.
func optionalID(c *gin.Context, name string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_filter", "Filtro inválido: "+name)
		return nil, false
	}

	v := uint(id)
	return &v, true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeEmailPtr(email *string) *string {
	if email == nil {
		return nil
	}
	v := normalizeEmail(*email)
	return &v
}
