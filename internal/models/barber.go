package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"column:nome;size:100;not null" json:"nome"`
	Email    string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string  `gorm:"column:senha;size:255;not null" json:"-"`
	Phone    *string `gorm:"column:telefone;size:20" json:"telefone,omitempty"`

	// Média das notas de todas as avaliações do barbeiro; 0 sem avaliações.
	AverageRating float64 `gorm:"column:media_notas;not null;default:0" json:"mediaNotas"`

	Reviews      []Review      `gorm:"foreignKey:BarberID" json:"avaliacoes,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:BarberID" json:"agendamentos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Barber) TableName() string { return "barbeiros" }
