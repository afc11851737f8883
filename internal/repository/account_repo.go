package repository

import (
	"context"

	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"gorm.io/gorm"
)

// AccountRepository persists login accounts.
type AccountRepository interface {
	// Register creates the player and its account atomically.
	Register(ctx context.Context, acc *model.Account, p *model.Player) error
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	Delete(ctx context.Context, username string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Register(ctx context.Context, acc *model.Account, p *model.Player) error {
	usernameTaken := apperrors.Conflict("Username already exists!")
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Account{}).Where("username = ?", acc.Username).Count(&n).Error; err != nil {
			return translate(err, "check username", nil, nil)
		}
		if n > 0 {
			return usernameTaken
		}
		if err := createPlayer(tx, p); err != nil {
			return err
		}
		acc.PlayerID = p.ID
		acc.Player = nil
		err := tx.Create(acc).Error
		return translate(err, "create account", nil, usernameTaken)
	})
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	var acc model.Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&acc).Error
	if err != nil {
		return nil, translate(err, "get account", apperrors.NotFound("Account %q not found", username), nil)
	}
	return &acc, nil
}

func (r *accountRepository) Delete(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Where("username = ?", username).Delete(&model.Account{})
	if res.Error != nil {
		return translate(res.Error, "delete account", nil, nil)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Account %q not found", username)
	}
	return nil
}
