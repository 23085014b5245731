package models

import "time"

// Community is a named patient support group.
// MemberCount is only adjusted inside the join/leave/create transactions.
type Community struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:120;not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Category        string    `gorm:"size:60;not null;index" json:"category"`
	ImageURL        string    `json:"image_url"`
	IsPrivate       bool      `gorm:"not null;default:false" json:"is_private"`
	CreatedByUserID *uint     `json:"created_by_user_id"`
	CreatedByUser   *User     `gorm:"foreignKey:CreatedByUserID" json:"created_by_user,omitempty"`
	MemberCount     int       `gorm:"not null;default:0" json:"member_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Community) TableName() string {
	return "communities"
}
