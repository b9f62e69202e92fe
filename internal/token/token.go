package token

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

var (
	ErrEmptySecret  = errors.New("token secret must not be empty")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the payload carried by an access token.
type Claims struct {
	UserID     uint64 `json:"userId"`
	UserEmail  string `json:"userEmail"`
	UserRoleID uint64 `json:"userRoleId"`
	jwt.RegisteredClaims
}

// Verifier resolves an Authorization header value to the user it was issued for.
type Verifier interface {
	Verify(ctx context.Context, header string) (userID uint64, ok bool)
}

// Service issues and verifies HS256 access tokens.
type Service struct {
	secret   []byte
	ttl      time.Duration
	denylist Denylist
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a token Service. A nil denylist disables revocation checks.
func NewService(secret string, ttl time.Duration, denylist Denylist, logger *zap.Logger) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		secret:   []byte(secret),
		ttl:      ttl,
		denylist: denylist,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Issue signs a token for the given identity.
func (s *Service) Issue(userID uint64, email string, roleID uint64) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:     userID,
		UserEmail:  email,
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates signature and expiry of a raw token and returns its claims.
func (s *Service) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.UserID == 0 || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verify implements Verifier. Any failure, including a denylist lookup
// error, yields ok=false.
func (s *Service) Verify(ctx context.Context, header string) (uint64, bool) {
	raw := Extract(header)
	if raw == "" {
		return 0, false
	}

	claims, err := s.Parse(raw)
	if err != nil {
		return 0, false
	}

	if s.denylist != nil {
		revoked, err := s.denylist.Contains(ctx, Fingerprint(raw))
		if err != nil {
			s.logger.Error("token denylist lookup failed", zap.Error(err))
			return 0, false
		}
		if revoked {
			return 0, false
		}
	}

	return claims.UserID, true
}

// Revoke puts a valid token on the denylist until it would have expired.
func (s *Service) Revoke(ctx context.Context, header string) error {
	if s.denylist == nil {
		return errors.New("token revocation is not configured")
	}

	raw := Extract(header)
	claims, err := s.Parse(raw)
	if err != nil {
		return err
	}

	remaining := claims.ExpiresAt.Time.Sub(s.now())
	if remaining <= 0 {
		return nil
	}
	return s.denylist.Add(ctx, Fingerprint(raw), remaining)
}

// Extract returns the raw token from an Authorization header value. The
// "Bearer" scheme is optional.
func Extract(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return header
}

// Fingerprint identifies a token on the denylist without storing it.
func Fingerprint(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
