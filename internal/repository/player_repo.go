package repository

import (
	"context"
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"gorm.io/gorm"
)

// PlayerRepository persists players.
type PlayerRepository interface {
	Create(ctx context.Context, p *model.Player) error
	GetByID(ctx context.Context, id int64) (*model.Player, error)
	List(ctx context.Context) ([]*model.Player, error)
	// Update writes every profile column of an existing player.
	Update(ctx context.Context, p *model.Player) error
	Delete(ctx context.Context, id int64) error

	// Transaction runs fn against a repository bound to one database transaction.
	Transaction(ctx context.Context, fn func(tx PlayerRepository) error) error
	// LockByID is GetByID holding the player's row lock until the surrounding transaction ends.
	LockByID(ctx context.Context, id int64) (*model.Player, error)
	// RestrictedEventIDs lists the events playerID is enrolled in whose gender restriction
	// would not admit a player of gender g.
	RestrictedEventIDs(ctx context.Context, playerID int64, g model.Gender) ([]int64, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository builds a gorm-backed PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, p *model.Player) error {
	return createPlayer(r.db.WithContext(ctx), p)
}

// createPlayer is shared with account registration so both run inside one transaction.
func createPlayer(tx *gorm.DB, p *model.Player) error {
	explicit := p.ID != 0
	if explicit {
		var n int64
		if err := tx.Model(&model.Player{}).Where("id = ?", p.ID).Count(&n).Error; err != nil {
			return translate(err, "check player id", nil, nil)
		}
		if n > 0 {
			return apperrors.Conflict("Player with id %d already exists.", p.ID)
		}
	}
	if err := tx.Create(p).Error; err != nil {
		return translate(err, "create player", nil, idConflict("Player", p.ID))
	}
	if explicit {
		return syncSequence(tx, model.Player{}.TableName())
	}
	return nil
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (*model.Player, error) {
	return getPlayer(r.db.WithContext(ctx), id)
}

func (r *playerRepository) LockByID(ctx context.Context, id int64) (*model.Player, error) {
	return getPlayer(forUpdate(r.db.WithContext(ctx)), id)
}

func getPlayer(db *gorm.DB, id int64) (*model.Player, error) {
	var p model.Player
	if err := db.First(&p, id).Error; err != nil {
		return nil, translate(err, "get player", apperrors.NotFound("Player with id %d not found", id), nil)
	}
	return &p, nil
}

func (r *playerRepository) RestrictedEventIDs(ctx context.Context, playerID int64, g model.Gender) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.EventPlayer{}).
		Joins("JOIN events ON events.id = event_players.event_id").
		Where("event_players.player_id = ? AND events.gender <> ? AND events.gender <> ?", playerID, model.GenderCoed, g).
		Order("events.id").
		Pluck("events.id", &ids).Error
	if err != nil {
		return nil, translate(err, "restricted events of player", nil, nil)
	}
	return ids, nil
}

func (r *playerRepository) Transaction(ctx context.Context, fn func(tx PlayerRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&playerRepository{db: tx})
	})
}

func (r *playerRepository) List(ctx context.Context) ([]*model.Player, error) {
	var list []*model.Player
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, translate(err, "list players", nil, nil)
	}
	return list, nil
}

func (r *playerRepository) Update(ctx context.Context, p *model.Player) error {
	p.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&model.Player{}).
		Where("id = ?", p.ID).
		Select("fname", "lname", "rating", "email", "phone", "bday", "gender", "updated_at").
		Updates(p)
	if res.Error != nil {
		return translate(res.Error, "update player", nil, nil)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Player with id %d not found", p.ID)
	}
	return nil
}

func (r *playerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// relation rows and the account go with the player
		if err := tx.Where("player_id = ?", id).Delete(&model.EventPlayer{}).Error; err != nil {
			return translate(err, "delete player enrollments", nil, nil)
		}
		if err := tx.Where("player_id = ?", id).Delete(&model.Account{}).Error; err != nil {
			return translate(err, "delete player account", nil, nil)
		}
		res := tx.Delete(&model.Player{}, id)
		if res.Error != nil {
			return translate(res.Error, "delete player", nil, nil)
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("Player with id %d not found", id)
		}
		return nil
	})
}
