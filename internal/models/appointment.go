package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"column:cliente_id;not null;index" json:"clienteId"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cliente,omitempty"`

	BarberID uint    `gorm:"column:barbeiro_id;not null;index" json:"barbeiroId"`
	Barber   *Barber `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barbeiro,omitempty"`

	ServiceID uint     `gorm:"column:servico_id;not null;index" json:"servicoId"`
	Service   *Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"servico,omitempty"`

	Date   time.Time `gorm:"column:data;not null" json:"data"`
	Status string    `gorm:"size:20;not null;default:'AGENDADO'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Appointment) TableName() string { return "agendamentos" }
