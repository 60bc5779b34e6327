package model

import "time"

// JobApplication is one tracked job application. Rows are hard-deleted;
// uniqueness of (UserEmail, JobLink) is checked before insert rather than
// enforced by the database, so the index below is deliberately non-unique.
type JobApplication struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserEmail      string    `json:"user_email" gorm:"size:255;not null;index:idx_user_job_link"`
	JobLink        string    `json:"job_link" gorm:"size:1024;not null;index:idx_user_job_link"`
	CompanyName    string    `json:"company_name" gorm:"size:255"`
	JobRole        string    `json:"job_role" gorm:"size:255"`
	JobLocation    string    `json:"job_location" gorm:"size:255"`
	Status         string    `json:"status" gorm:"size:64"`
	RecruiterName  string    `json:"recruiter_name" gorm:"size:255"`
	RecruiterEmail string    `json:"recruiter_email" gorm:"size:255"`
	RecruiterPhone string    `json:"recruiter_phone" gorm:"size:64"`
	Comments       string    `json:"comments" gorm:"size:2048"`
	CreatedAt      time.Time `json:"created_at"`
}
