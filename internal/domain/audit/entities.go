package audit

import "time"

type Action string

const (
	ActionApproveCampaign Action = "APPROVE_CAMPAIGN"
	ActionRejectCampaign  Action = "REJECT_CAMPAIGN"
	ActionApproveLoan     Action = "APPROVE_LOAN"
	ActionRejectLoan      Action = "REJECT_LOAN"
	ActionBlockUser       Action = "BLOCK_USER"
	ActionUnblockUser     Action = "UNBLOCK_USER"
	ActionDefaultLoan     Action = "DEFAULT_LOAN"
)

// Log is an append-only record of a privileged admin action.
type Log struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	LogID      string    `gorm:"size:32;uniqueIndex:ux_admin_audit_logs_log_id" json:"log_id"`
	Action     Action    `gorm:"size:32" json:"action"`
	AdminID    string    `gorm:"size:32;index:idx_admin_audit_logs_admin" json:"admin_id"`
	EntityType string    `gorm:"size:16" json:"entity_type"`
	EntityID   string    `gorm:"size:32;index:idx_admin_audit_logs_entity" json:"entity_id"`
	Changes    string    `gorm:"type:text" json:"changes"`
	Reason     string    `gorm:"size:500" json:"reason,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Log) TableName() string { return "admin_audit_logs" }
