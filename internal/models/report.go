package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Report struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	// uniqueIndex keeps the job/report relation one-to-one
	JobID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"jobId"`
	Job   *Job   `gorm:"foreignKey:JobID" json:"job,omitempty"`

	WorkSummary datatypes.JSONSlice[string] `gorm:"not null" json:"workSummary"`
	Photos      datatypes.JSONSlice[string] `gorm:"not null" json:"photos"`

	StartTime  *string `gorm:"size:5" json:"startTime"`
	FinishTime *string `gorm:"size:5" json:"finishTime"`

	RequiresFollowUp bool `gorm:"default:false" json:"requiresFollowUp"`

	Postponed       bool    `gorm:"default:false" json:"postponed"`
	PostponedDate   *string `gorm:"size:10" json:"postponedDate"`
	PostponedReason *string `gorm:"type:text" json:"postponedReason"`

	SubmittedByID *string `gorm:"type:varchar(36)" json:"submittedBy"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
