package model

import (
	"time"

	"gorm.io/gorm"
)

// Developer represents an active developer record.
// Matches the developers table schema.
type Developer struct {
	ID                 int64     `gorm:"primaryKey;column:id;autoIncrement"                                 json:"-"`
	MemberID           string    `gorm:"column:member_id;type:varchar(255);not null;uniqueIndex:idx_developers_member_id" json:"member_id"`
	Name               string    `gorm:"column:name;type:varchar(255);not null"                             json:"name"`
	Age                *int      `gorm:"column:age"                                                         json:"age,omitempty"`
	DeveloperLevel     Level     `gorm:"column:developer_level;type:varchar(50);not null"                   json:"developer_level"`
	DeveloperSkillType SkillType `gorm:"column:developer_skill_type;type:varchar(50);not null"              json:"developer_skill_type"`
	ExperienceYears    int       `gorm:"column:experience_years;not null;default:0"                         json:"experience_years"`
	StatusCode         Status    `gorm:"column:status_code;type:varchar(50);not null;default:EMPLOYED;index:idx_developers_status_code" json:"status_code"`
	CreatedAt          time.Time `gorm:"column:created_at;not null"                                         json:"-"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null"                                         json:"-"`
}

// TableName specifies the table name for GORM.
func (Developer) TableName() string {
	return "developers"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (d *Developer) BeforeUpdate(tx *gorm.DB) error {
	d.UpdatedAt = time.Now()
	return nil
}

// RetiredDeveloper is the archival copy written when a developer
// retires. It is denormalized and independent of the live row; nothing
// joins back to developers.
type RetiredDeveloper struct {
	ID              int64     `gorm:"primaryKey;column:id;autoIncrement"         json:"-"`
	MemberID        string    `gorm:"column:member_id;type:varchar(255);not null" json:"member_id"`
	Name            string    `gorm:"column:name;type:varchar(255);not null"     json:"name"`
	ExperienceYears int       `gorm:"column:experience_years;not null;default:0" json:"experience_years"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"                 json:"-"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"                 json:"-"`
}

// TableName specifies the table name for GORM.
func (RetiredDeveloper) TableName() string {
	return "retired_developers"
}
