package models

import "time"

type Machinery struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category    string `gorm:"size:100;not null" json:"category"`
	Description string `gorm:"size:255;not null" json:"description"`
	Brand       string `gorm:"size:100;not null" json:"brand"`
	Quantity    int    `gorm:"not null;default:0;check:chk_machinery_quantity,quantity >= 0" json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Machinery) TableName() string { return "machinery" }

func (m Machinery) PrimaryKey() uint { return m.ID }
