package httperr

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE do PostgreSQL que a API trata de forma específica.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

var keyDetail = regexp.MustCompile(`Key \(([^)]+)\)=`)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// UniqueViolation informa se err é uma violação de unicidade e qual campo a causou.
func UniqueViolation(err error) (string, bool) {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != pgUniqueViolation {
		return "", false
	}
	return violatedField(pgErr), true
}

func IsForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgCheckViolation
}

func violatedField(pgErr *pgconn.PgError) string {
	if m := keyDetail.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		return m[1]
	}
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	// clientes_email_key / idx_clientes_email -> email
	name := strings.TrimSuffix(strings.TrimPrefix(pgErr.ConstraintName, "idx_"), "_key")
	if pgErr.TableName != "" {
		return strings.TrimPrefix(name, pgErr.TableName+"_")
	}
	if i := strings.LastIndex(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}
