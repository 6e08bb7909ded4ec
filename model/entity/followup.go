package entity

import "time"

const (
	FollowUpDue  = "due"
	FollowUpDone = "done"
)

// FollowUpCall is a scheduled call-back for an order (confirmation,
// delivery check, reorder nudge).
type FollowUpCall struct {
	FollowUpID uint       `gorm:"column:followup_id;primaryKey;autoIncrement" json:"id"`
	OrderRef   string     `gorm:"column:order_ref;type:varchar(64);not null;index" json:"orderRef"`
	Phone      string     `gorm:"column:phone;type:varchar(32);not null" json:"phone"`
	Note       *string    `gorm:"column:note;type:text" json:"note,omitempty"`
	DueAt      *time.Time `gorm:"column:due_at;index" json:"dueAt,omitempty"`
	Status     string     `gorm:"column:status;type:varchar(16);not null;default:due" json:"status"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (FollowUpCall) TableName() string {
	return "followup_call"
}
