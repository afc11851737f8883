// Package auth issues and verifies the bearer tokens handed out by POST /api/sessions.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
)

const issuer = "tennis-organizer"

type claims struct {
	PlayerID int64  `json:"pid"`
	Username string `json:"usr"`
	jwt.RegisteredClaims
}

// Session is what a valid token proves.
type Session struct {
	PlayerID  int64
	Username  string
	ExpiresAt time.Time
}

// Issuer signs HS256 tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for the player and when it expires.
func (i *Issuer) Issue(playerID int64, username string) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		PlayerID: playerID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(playerID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	})
	s, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return s, exp, nil
}

// Parse verifies a token. Every failure is UNAUTHENTICATED.
func (i *Issuer) Parse(token string) (*Session, error) {
	var cl claims
	tok, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Wrap(apperrors.CodeUnauthenticated, err, "session expired")
		}
		return nil, apperrors.Wrap(apperrors.CodeUnauthenticated, err, "invalid session token")
	}
	if !tok.Valid {
		return nil, apperrors.New(apperrors.CodeUnauthenticated, "invalid session token")
	}
	s := &Session{PlayerID: cl.PlayerID, Username: cl.Username}
	if cl.ExpiresAt != nil {
		s.ExpiresAt = cl.ExpiresAt.Time
	}
	return s, nil
}
