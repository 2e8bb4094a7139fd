package timezone

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Fuso da barbearia; datas sem offset vindas do front são lidas nele.
const DefaultTimezone = "America/Sao_Paulo"

// Load exige um nome IANA válido ("America/Recife", "UTC").
func Load(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" || strings.EqualFold(tz, "local") {
		return nil, fmt.Errorf("timezone %q: nome IANA obrigatório", tz)
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Location nunca falha: fuso inválido cai no padrão e, em último caso, em UTC.
func Location(tz string) *time.Location {
	if loc, err := Load(tz); err == nil {
		return loc
	}
	if loc, err := Load(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}
