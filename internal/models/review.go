package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"column:cliente_id;not null;index" json:"clienteId"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cliente,omitempty"`

	BarberID uint    `gorm:"column:barbeiro_id;not null;index" json:"barbeiroId"`
	Barber   *Barber `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barbeiro,omitempty"`

	ServiceID uint     `gorm:"column:servico_id;not null;index" json:"servicoId"`
	Service   *Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"servico,omitempty"`

	Score   int    `gorm:"column:nota;not null" json:"nota"`
	Comment string `gorm:"column:comentario;size:500;not null" json:"comentario"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Review) TableName() string { return "avaliacoes" }
