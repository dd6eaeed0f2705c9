package models

import "time"

// JobStatusCompleted marks a scheduled job that has been finished and billed,
// and is the only status a worked job carries.
const JobStatusCompleted = "Completed"

type ScheduledJob struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Service string    `gorm:"size:255;not null" json:"service"`
	Date    time.Time `gorm:"not null;index" json:"date"`

	ClientID uint    `gorm:"not null;index" json:"clientId"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	Status *string `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (j ScheduledJob) PrimaryKey() uint { return j.ID }

func (j ScheduledJob) IsCompleted() bool {
	return j.Status != nil && *j.Status == JobStatusCompleted
}

// WorkedJob has no reference back to the scheduled job it may come from.
type WorkedJob struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Service string    `gorm:"size:255;not null" json:"service"`
	Date    time.Time `gorm:"not null;index" json:"date"`

	ClientID uint    `gorm:"not null;index" json:"clientId"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client,omitempty"`

	Status string `gorm:"size:20;not null;default:'Completed'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (j WorkedJob) PrimaryKey() uint { return j.ID }
