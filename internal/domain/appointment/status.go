package appointment

import "github.com/BruksfildServices01/barbearia-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "AGENDADO"
	StatusDone      Status = "CONCLUIDO"
	StatusCanceled  Status = "CANCELADO"
)

// ===============================
// Validations
// ===============================

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	switch s {
	case StatusScheduled, StatusDone, StatusCanceled:
		return s, nil
	}
	return "", httperr.NewBusiness("invalid_status", "Status inválido. Use AGENDADO, CONCLUIDO ou CANCELADO.")
}

// IsFinal: concluído ou cancelado.
func (s Status) IsFinal() bool {
	return s == StatusDone || s == StatusCanceled
}

// CanChange só barra algo no modo estrito: agendamento finalizado não muda mais de status.
func CanChange(current, next Status, strict bool) error {
	if current == next || !strict {
		return nil
	}
	if current.IsFinal() {
		return httperr.NewBusiness("invalid_status_transition", "Agendamento finalizado não pode mudar de status.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
