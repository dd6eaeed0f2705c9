package models

import "time"

type Supply struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Description string `gorm:"size:255;not null" json:"description"`
	Quantity    int    `gorm:"not null;default:0;check:chk_supplies_quantity,quantity >= 0" json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s Supply) PrimaryKey() uint { return s.ID }
