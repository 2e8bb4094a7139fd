package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"AGENDADO", "CONCLUIDO", "CANCELADO"} {
		s, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, Status(raw), s)
	}

	_, err := ParseStatus("agendado")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanChange(t *testing.T) {
	assert.NoError(t, CanChange(StatusDone, StatusScheduled, false))
	assert.NoError(t, CanChange(StatusScheduled, StatusDone, true))
	assert.NoError(t, CanChange(StatusDone, StatusDone, true))

	err := CanChange(StatusCanceled, StatusScheduled, true)
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))
}

func TestApply_ChangesOnlyDateAndStatus(t *testing.T) {
	ap := &models.Appointment{
		ID:        1,
		ClientID:  10,
		BarberID:  20,
		ServiceID: 30,
		Status:    string(StatusScheduled),
		Date:      time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	res, err := Apply(ap, Patch{
		Data:   strPtr("2025-12-11T10:00:00Z"),
		Status: strPtr("CONCLUIDO"),
	}, time.UTC, false)
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.False(t, res.Reopened)
	assert.Equal(t, "CONCLUIDO", ap.Status)
	assert.Equal(t, time.Date(2025, 12, 11, 10, 0, 0, 0, time.UTC), ap.Date)
	assert.Equal(t, uint(10), ap.ClientID)
	assert.Equal(t, uint(20), ap.BarberID)
	assert.Equal(t, uint(30), ap.ServiceID)
}

func TestApply_UnparseableDateIsDropped(t *testing.T) {
	original := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: "AGENDADO", Date: original}

	res, err := Apply(ap, Patch{Data: strPtr("não sei")}, time.UTC, false)
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Equal(t, original, ap.Date)
}

func TestApply_Reopen(t *testing.T) {
	ap := &models.Appointment{Status: "CANCELADO"}

	res, err := Apply(ap, Patch{Status: strPtr("AGENDADO")}, time.UTC, false)
	require.NoError(t, err)
	assert.True(t, res.Reopened)
	assert.Equal(t, "AGENDADO", ap.Status)

	ap.Status = "CANCELADO"
	_, err = Apply(ap, Patch{Status: strPtr("AGENDADO")}, time.UTC, true)
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))
	assert.Equal(t, "CANCELADO", ap.Status)
}

func TestApply_InvalidStatus(t *testing.T) {
	ap := &models.Appointment{Status: "AGENDADO"}
	_, err := Apply(ap, Patch{Status: strPtr("PENDENTE")}, time.UTC, false)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
