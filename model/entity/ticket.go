package entity

import "time"

const (
	TicketOpen    = "open"
	TicketPending = "pending"
	TicketClosed  = "closed"
)

type SupportTicket struct {
	TicketID      uint      `gorm:"column:ticket_id;primaryKey;autoIncrement" json:"id"`
	Subject       string    `gorm:"column:subject;type:varchar(255);not null" json:"subject"`
	Body          string    `gorm:"column:body;type:text" json:"body"`
	CustomerName  *string   `gorm:"column:customer_name;type:varchar(128)" json:"customerName,omitempty"`
	CustomerPhone *string   `gorm:"column:customer_phone;type:varchar(32)" json:"customerPhone,omitempty"`
	Status        string    `gorm:"column:status;type:varchar(16);not null;default:open;index" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (SupportTicket) TableName() string {
	return "support_ticket"
}

// ValidTicketStatus reports whether s is a known ticket status.
func ValidTicketStatus(s string) bool {
	return s == TicketOpen || s == TicketPending || s == TicketClosed
}
