package model

import "time"

// Profile is one snapshot of a user's candidate profile. Profiles are
// insert-only: each save appends a row, and the row with the highest id
// for a given email is the current profile.
type Profile struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserEmail          string    `json:"user_email" gorm:"size:255;not null;index"`
	FirstName          string    `json:"first_name" gorm:"size:255"`
	LastName           string    `json:"last_name" gorm:"size:255"`
	Address            string    `json:"address" gorm:"size:512"`
	City               string    `json:"city" gorm:"size:255"`
	MobileNumber       string    `json:"mobile_number" gorm:"size:64"`
	GithubURL          string    `json:"github_url" gorm:"size:512"`
	JobPosition        string    `json:"job_position" gorm:"size:255"`
	ExperienceMonths   int       `json:"experience_months"`
	Skills             string    `json:"skills" gorm:"size:1024"`
	PreferredLocations string    `json:"preferred_locations" gorm:"size:512"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName keeps the historical table name.
func (Profile) TableName() string {
	return "user_profiles"
}
