package access

import "time"

// Role mirrors rol_id in Campos_Usuarios.
type Role int

const (
	RoleOwner  Role = 1
	RoleMember Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleMember:
		return "member"
	default:
		return "unknown"
	}
}

// Satisfies reports whether r grants at least min. Owners satisfy every tier.
func (r Role) Satisfies(min Role) bool {
	if r == RoleOwner {
		return true
	}
	return r == min
}

type Membership struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	FieldID   string    `gorm:"column:campo_id;type:uuid;not null;index"`
	Role      Role      `gorm:"column:rol_id;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Membership) TableName() string {
	return "Campos_Usuarios"
}
