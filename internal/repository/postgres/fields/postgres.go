package fields

import (
	"context"
	"errors"

	"campo-app-go/internal/domain/access"
	fieldsdomain "campo-app-go/internal/domain/fields"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(fieldsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateField(ctx context.Context, field *fieldsdomain.Field) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *PostgresRepository) ListFieldsByUser(ctx context.Context, userID string) ([]fieldsdomain.UserField, error) {
	type fieldRow struct {
		ID   string `gorm:"column:id"`
		Name string `gorm:"column:name"`
		Role int    `gorm:"column:rol_id"`
	}

	var rows []fieldRow
	if err := r.db.WithContext(ctx).
		Model(&fieldsdomain.Field{}).
		Select(`"Campos".id, "Campos".name, "Campos_Usuarios".rol_id`).
		Joins(`join "Campos_Usuarios" on "Campos_Usuarios".campo_id = "Campos".id`).
		Where(`"Campos_Usuarios".user_id = ?`, userID).
		Order(`"Campos".name asc`).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]fieldsdomain.UserField, 0, len(rows))
	for _, row := range rows {
		result = append(result, fieldsdomain.UserField{
			ID:   row.ID,
			Name: row.Name,
			Role: access.Role(row.Role),
		})
	}
	return result, nil
}

func (r *PostgresRepository) AddMembership(ctx context.Context, member *access.Membership) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) GetMembership(ctx context.Context, userID, fieldID string) (*access.Membership, error) {
	var member access.Membership
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND campo_id = ?", userID, fieldID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, access.ErrMembershipNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, fieldID string) ([]access.Membership, error) {
	var members []access.Membership
	if err := r.db.WithContext(ctx).
		Where("campo_id = ?", fieldID).
		Order("created_at asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) CreateInvitation(ctx context.Context, invitation *fieldsdomain.Invitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *PostgresRepository) GetInvitationByCode(ctx context.Context, code string) (*fieldsdomain.Invitation, error) {
	var invitation fieldsdomain.Invitation
	if err := r.db.WithContext(ctx).Where("codigo = ?", code).First(&invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fieldsdomain.ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *PostgresRepository) DeleteInvitation(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&fieldsdomain.Invitation{})
	return result.RowsAffected, result.Error
}
