package user

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RoleCampaignCreator Role = "CAMPAIGN_CREATOR"
	RoleLender          Role = "LENDER"
	RoleBorrower        Role = "BORROWER"
)

// RoleList is a role set persisted as a comma-separated column.
type RoleList []Role

// HasAny reports whether the set intersects the required roles.
// Authorization everywhere is exactly this check.
func (rl RoleList) HasAny(required ...Role) bool {
	for _, have := range rl {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}

func (rl RoleList) Value() (driver.Value, error) {
	parts := make([]string, 0, len(rl))
	for _, r := range rl {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ","), nil
}

func (rl *RoleList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*rl = nil
		return nil
	default:
		return fmt.Errorf("roles: cannot scan %T", src)
	}
	if raw == "" {
		*rl = nil
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(RoleList, 0, len(parts))
	for _, p := range parts {
		out = append(out, Role(strings.TrimSpace(p)))
	}
	*rl = out
	return nil
}

type User struct {
	ID            uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID        string         `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Email         string         `gorm:"size:255;uniqueIndex:ux_users_email_active" json:"email"`
	FirstName     string         `gorm:"size:100" json:"first_name"`
	LastName      string         `gorm:"size:100" json:"last_name"`
	Roles         RoleList       `gorm:"type:varchar(255)" json:"roles"`
	CreditScore   int            `gorm:"default:0" json:"credit_score"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	IsBlocked     bool           `gorm:"default:false" json:"is_blocked"`
	BlockedReason string         `gorm:"type:text" json:"-"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
