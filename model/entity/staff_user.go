package entity

import "time"

// StaffUser is admin-console staff data. Authentication is handled outside
// this service; this is roster data only.
type StaffUser struct {
	UserID    uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"id"`
	Firstname *string   `gorm:"column:firstname;type:varchar(32)" json:"firstname,omitempty"`
	Lastname  *string   `gorm:"column:lastname;type:varchar(32)" json:"lastname,omitempty"`
	Email     *string   `gorm:"column:email;type:varchar(128)" json:"email,omitempty"`
	Username  *string   `gorm:"column:username;type:varchar(40);uniqueIndex" json:"username,omitempty"`
	Role      string    `gorm:"column:role;type:varchar(32);not null;default:staff" json:"role"`
	IsActive  int16     `gorm:"column:is_active;not null;default:1" json:"isActive"`
	Created   time.Time `gorm:"column:created;autoCreateTime" json:"-"`
	Modified  time.Time `gorm:"column:modified;autoUpdateTime" json:"-"`
}

func (StaffUser) TableName() string {
	return "staff_user"
}
