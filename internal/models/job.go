package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	Address       string `gorm:"size:255;not null" json:"address"`
	Postcode      string `gorm:"size:20;not null" json:"postcode"`
	Problem       string `gorm:"type:text;not null" json:"problem"`
	CustomerPhone string `gorm:"size:30" json:"customerPhone"`

	// PENDING | IN_PROGRESS | COMPLETED
	Status string `gorm:"size:20;default:'PENDING';index" json:"status"`

	ScheduledDate *string `gorm:"size:10" json:"scheduledDate"`
	TimeFrom      *string `gorm:"size:5" json:"timeFrom"`
	TimeTo        *string `gorm:"size:5" json:"timeTo"`

	CreatedByID  *string `gorm:"type:varchar(36);index" json:"createdBy"`
	AssignedToID *string `gorm:"type:varchar(36);index" json:"assignedTo"`

	Report *Report `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"report,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
