package identity

import (
	"context"
	"errors"

	identitydomain "campo-app-go/internal/domain/identity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetUserID(ctx context.Context, telegramID int64) (string, error) {
	var conn identitydomain.Connection
	if err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", identitydomain.ErrNotLinked
		}
		return "", err
	}
	return conn.UserID, nil
}

// UpsertConnection keys on telegram_id; linking again replaces the account.
func (r *PostgresRepository) UpsertConnection(ctx context.Context, conn *identitydomain.Connection) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "telegram_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "updated_at"}),
		}).
		Create(conn).Error
}
