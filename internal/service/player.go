package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"github.com/outlierSlug/dubhacks2025/internal/interfaces"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"github.com/outlierSlug/dubhacks2025/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const credentialsNotFound = "Username/Password not found"

// RegisterPlayerRequest creates an account and its player. ID may be 0 to let the store pick one.
type RegisterPlayerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`

	ID     int64  `json:"id"`
	FName  string `json:"fname" binding:"required"`
	LName  string `json:"lname" binding:"required"`
	Rating int    `json:"rating"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Bday   string `json:"bday" binding:"required"`
	Gender int    `json:"gender" binding:"required,oneof=1 2 3"`
}

// UpdatePlayerRequest is a partial profile update; nil fields are left alone.
// fname and lname change together.
type UpdatePlayerRequest struct {
	Rating *int    `json:"rating"`
	FName  *string `json:"fname"`
	LName  *string `json:"lname"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Bday   *string `json:"bday"`
	Gender *int    `json:"gender" binding:"omitempty,oneof=1 2 3"`
}

// PlayerService handles registration, credential lookup and profile edits.
type PlayerService struct {
	players  repository.PlayerRepository
	accounts repository.AccountRepository
	cache    interfaces.RecommendationCache
	logger   *logrus.Logger
	now      func() time.Time
}

func NewPlayerService(players repository.PlayerRepository, accounts repository.AccountRepository,
	cache interfaces.RecommendationCache, logger *logrus.Logger) *PlayerService {
	return &PlayerService{
		players:  players,
		accounts: accounts,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// Register stores a new account and player together.
func (s *PlayerService) Register(ctx context.Context, req *RegisterPlayerRequest) (*PlayerView, error) {
	if req == nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, apperrors.InvalidArgument("username and password are required")
	}
	if strings.TrimSpace(req.FName) == "" || strings.TrimSpace(req.LName) == "" {
		return nil, apperrors.InvalidArgument("fname and lname are required")
	}
	gender := model.Gender(req.Gender)
	if !gender.Valid() {
		return nil, apperrors.InvalidArgument("gender must be 1, 2 or 3, got %d", req.Gender)
	}
	bday, err := parseDate("bday", req.Bday)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &model.Player{
		ID:     req.ID,
		Rating: req.Rating,
		Email:  req.Email,
		Phone:  req.Phone,
		Gender: gender,
	}
	p.ChangeName(req.FName, req.LName)
	p.ChangeBirthday(bday)

	acc := &model.Account{Username: req.Username, PasswordHash: string(hash)}
	if err := s.accounts.Register(ctx, acc, p); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"player_id": p.ID, "username": acc.Username}).Info("player registered")
	v := NewPlayerView(p, s.now())
	return &v, nil
}

// Authenticate resolves credentials to a player. Unknown usernames and wrong passwords are
// both NOT_FOUND; an account whose player is missing is STATE_INCONSISTENCY.
func (s *PlayerService) Authenticate(ctx context.Context, username, password string) (*model.Player, error) {
	acc, err := s.accounts.GetByUsername(ctx, username)
	if apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil, apperrors.NotFound(credentialsNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.NotFound(credentialsNotFound)
		}
		return nil, err
	}

	p, err := s.players.GetByID(ctx, acc.PlayerID)
	if apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil, apperrors.Wrap(apperrors.CodeStateInconsistency, err,
			"Player ID exists in accounts but not in player list - State Error")
	}
	return p, err
}

// GetByCredentials is Authenticate rendered as a view.
func (s *PlayerService) GetByCredentials(ctx context.Context, username, password string) (*PlayerView, error) {
	p, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	v := NewPlayerView(p, s.now())
	return &v, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (*PlayerView, error) {
	p, err := s.players.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := NewPlayerView(p, s.now())
	return &v, nil
}

// List returns every player as a summary; contact details are only served per player.
func (s *PlayerService) List(ctx context.Context) ([]PlayerSummary, error) {
	list, err := s.players.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PlayerSummary, 0, len(list))
	for _, p := range list {
		out = append(out, NewPlayerSummary(p))
	}
	return out, nil
}

// UpdateProfile applies the non-nil fields of req to player id. Ratings are not range checked.
func (s *PlayerService) UpdateProfile(ctx context.Context, id int64, req *UpdatePlayerRequest) (*PlayerView, error) {
	if req == nil {
		return nil, apperrors.InvalidArgument("empty update")
	}
	if (req.FName == nil) != (req.LName == nil) {
		return nil, apperrors.InvalidArgument("fname and lname must be changed together")
	}

	var p *model.Player
	err := s.players.Transaction(ctx, func(tx repository.PlayerRepository) error {
		var err error
		p, err = tx.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if err := applyProfile(p, req); err != nil {
			return err
		}
		if req.Gender != nil {
			// a restricted roster must never hold a player of the other gender
			ids, err := tx.RestrictedEventIDs(ctx, p.ID, p.Gender)
			if err != nil {
				return err
			}
			if len(ids) > 0 {
				return apperrors.Conflict("Player %d is signed up for gender-restricted event %d; leave it before changing gender",
					p.ID, ids[0]).WithMetadata("event_ids", joinIDs(ids))
			}
		}
		return tx.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	v := NewPlayerView(p, s.now())
	return &v, nil
}

func applyProfile(p *model.Player, req *UpdatePlayerRequest) error {
	if req.FName != nil {
		p.ChangeName(*req.FName, *req.LName)
	}
	if req.Rating != nil {
		p.UpdateRating(*req.Rating)
	}
	if req.Email != nil {
		p.ChangeEmail(*req.Email)
	}
	if req.Phone != nil {
		p.ChangePhone(*req.Phone)
	}
	if req.Bday != nil {
		bday, err := parseDate("bday", *req.Bday)
		if err != nil {
			return err
		}
		p.ChangeBirthday(bday)
	}
	if req.Gender != nil {
		g := model.Gender(*req.Gender)
		if !g.Valid() {
			return apperrors.InvalidArgument("gender must be 1, 2 or 3, got %d", *req.Gender)
		}
		p.ChangeGender(g)
	}
	return nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
