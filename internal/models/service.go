package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"column:nome;size:100;not null" json:"nome"`
	Description string  `gorm:"column:descricao;size:500;not null" json:"descricao"`
	Price       float64 `gorm:"column:preco;not null" json:"preco"`
	ImageURL    *string `gorm:"column:imagem_url;size:500" json:"imagemUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Service) TableName() string { return "servicos" }
