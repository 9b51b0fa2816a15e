package identity

import "time"

// Connection links a Telegram chat identity to an auth account.
type Connection struct {
	TelegramID int64     `gorm:"primaryKey;autoIncrement:false"`
	UserID     string    `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Connection) TableName() string {
	return "telegram_connections"
}

type Mode string

const (
	ModeLogin    Mode = "LOGIN"
	ModeRegister Mode = "REGISTER"
)

type LinkInput struct {
	TelegramID int64
	Email      string
	Password   string
	Mode       Mode
}
