// internal/service/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rainerio-service/internal/domain/seller"
	xerrors "rainerio-service/internal/pkg/errors"
	"rainerio-service/internal/pkg/session"
	"rainerio-service/internal/pkg/token"

	"go.uber.org/zap"
)

// TokenIssuer signs and verifies bearer tokens. token.Service is the
// production implementation.
type TokenIssuer interface {
	Generate(sellerID, sellerName string, isAdmin bool) (string, error)
	Validate(tokenString string) (*token.Claims, error)
}

// SessionStore holds the server-side sessions. session.Manager is the
// production implementation.
type SessionStore interface {
	Create(ctx context.Context, data *session.Data) error
	Get(ctx context.Context, sellerID string) (*session.Data, error)
	Destroy(ctx context.Context, sellerID string) error
}

// AuthService is the credential gate for the admin panel. Authentication is
// a lookup against the persisted seller collection; the password comparison
// is plaintext on purpose, for compatibility with the stored rows.
type AuthService struct {
	sellerRepo seller.Repository
	tokens     TokenIssuer
	sessions   SessionStore
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewAuthService(sellerRepo seller.Repository, tokens TokenIssuer, sessions SessionStore, sessionTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		sellerRepo: sellerRepo,
		tokens:     tokens,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// LoginResult is what a successful login hands the UI.
type LoginResult struct {
	Token  string        `json:"token"`
	Seller seller.Seller `json:"seller"`
}

// Login authenticates an identifier/password pair and, on success, issues a
// token and opens the server-side session. Wrong credentials and an
// inactive seller produce the same ErrInvalidCredentials so callers cannot
// probe which sellers exist; the distinction is logged for diagnostics.
// Transport failures propagate as-is.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	matched, err := s.sellerRepo.FindByCredentials(ctx, identifier, password)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			s.logger.Info("login rejected, no credential match", zap.String("identifier", identifier))
			return nil, xerrors.ErrInvalidCredentials
		case errors.Is(err, xerrors.ErrSellerInactive):
			s.logger.Info("login rejected, seller inactive", zap.String("identifier", identifier))
			return nil, xerrors.ErrInvalidCredentials
		default:
			return nil, fmt.Errorf("credential lookup failed: %w", err)
		}
	}

	if matched.ImageURL == "" {
		matched.ImageURL = seller.DefaultImageURL
	}

	signed, err := s.tokens.Generate(matched.ID, matched.Name, matched.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	now := time.Now()
	err = s.sessions.Create(ctx, &session.Data{
		SellerID:  matched.ID,
		Name:      matched.Name,
		PhotoURL:  matched.ImageURL,
		IsAdmin:   matched.IsAdmin,
		LoginAt:   now,
		ExpiresAt: now.Add(s.sessionTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s.logger.Info("seller logged in", zap.String("seller_id", matched.ID), zap.String("name", matched.Name))
	return &LoginResult{Token: signed, Seller: *matched}, nil
}

// Logout tears down the seller's session. The token becomes useless because
// validation requires a live session.
func (s *AuthService) Logout(ctx context.Context, sellerID string) error {
	if err := s.sessions.Destroy(ctx, sellerID); err != nil {
		return err
	}
	s.logger.Info("seller logged out", zap.String("seller_id", sellerID))
	return nil
}

// Validate checks a bearer token and its backing session, returning both.
func (s *AuthService) Validate(ctx context.Context, tokenString string) (*token.Claims, *session.Data, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, nil, xerrors.ErrUnauthorized
	}

	data, err := s.sessions.Get(ctx, claims.SellerID)
	if err != nil {
		return nil, nil, xerrors.ErrSessionExpired
	}
	return claims, data, nil
}
