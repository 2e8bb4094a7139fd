package models

import "time"

// Cliente final: agenda horários e deixa avaliações.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"column:nome;size:100;not null" json:"nome"`
	Email    string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string  `gorm:"column:senha;size:255;not null" json:"-"`
	Phone    *string `gorm:"column:telefone;size:20" json:"telefone,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Client) TableName() string { return "clientes" }
