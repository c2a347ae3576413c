package directory

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the credential record backing authentication and the user
// directory. Email is globally unique at the store level.
type User struct {
	bun.BaseModel  `bun:"table:users,alias:usr"`
	ID             uuid.UUID     `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name           string        `bun:"name,notnull" json:"name,omitempty"`
	Email          string        `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash   string        `bun:"password_hash,notnull" json:"-"`
	Role           UserRole      `bun:"user_role,notnull" json:"role,omitempty"`
	OrganisationID *uuid.UUID    `bun:"organisation_id,nullzero,type:uuid" json:"organisation_id,omitempty"`
	Organisation   *Organisation `bun:"rel:belongs-to,join:organisation_id=id" json:"organisation,omitempty"`
	CreatedAt      *time.Time    `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt      *time.Time    `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// EnsureRole applies the default role to unset records
func (u *User) EnsureRole() {
	if u.Role == "" {
		u.Role = RoleUser
	}
}

// Organisation belongs to exactly one owning user. The owner reference is
// set from the acting identity on creation and never updated afterwards.
type Organisation struct {
	bun.BaseModel `bun:"table:organisations,alias:org"`
	ID            uuid.UUID          `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string             `bun:"name,notnull" json:"name,omitempty"`
	Description   string             `bun:"description,notnull" json:"description,omitempty"`
	Status        OrganisationStatus `bun:"status,notnull" json:"status,omitempty"`
	UserID        uuid.UUID          `bun:"user_id,notnull,type:uuid" json:"user_id,omitempty"`
	User          *User              `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	CreatedAt     *time.Time         `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time         `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// EnsureStatus applies the default status to unset records
func (o *Organisation) EnsureStatus() {
	if o.Status == "" {
		o.Status = StatusInactive
	}
}
