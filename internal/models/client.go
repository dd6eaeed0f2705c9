package models

import "time"

// Client classification values.
const (
	ClassificationGreen  = "verde"
	ClassificationYellow = "amarillo"
	ClassificationRed    = "rojo"
)

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string  `gorm:"size:150;not null" json:"name"`
	Address        string  `gorm:"size:255;not null" json:"address"`
	Phone          string  `gorm:"size:30;not null" json:"phone"`
	Email          string  `gorm:"size:150;not null" json:"email"`
	Classification string  `gorm:"size:10;not null;default:'verde';check:chk_clients_classification,classification IN ('verde','amarillo','rojo')" json:"classification"`
	Notes          *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Client) PrimaryKey() uint { return c.ID }
