package models

import "time"

// Employee is also the authentication subject: User is the login name.
type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	User     string `gorm:"size:100;uniqueIndex;not null" json:"user"`
	Password string `gorm:"size:255;not null" json:"password,omitempty"`
	Name     string `gorm:"size:150;not null" json:"name"`
	Role     string `gorm:"size:50;not null" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e Employee) PrimaryKey() uint { return e.ID }
