package fields

import (
	"time"

	"campo-app-go/internal/domain/access"
)

// Field is an organisational unit. Ownership lives only in memberships.
type Field struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Field) TableName() string {
	return "Campos"
}

// Invitation is a single-use join code. Rows are deleted on redemption.
type Invitation struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"column:codigo;size:6;not null;index"`
	FieldID   string    `gorm:"column:campo_id;type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Invitation) TableName() string {
	return "invitaciones"
}

// UserField is a field as seen by one of its members.
type UserField struct {
	ID   string
	Name string
	Role access.Role
}

func (f UserField) IsOwner() bool {
	return f.Role == access.RoleOwner
}

type RedeemResult struct {
	FieldID       string
	AlreadyMember bool
}
