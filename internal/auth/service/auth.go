package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hirewire/hirewire/internal/auth/domain"
	"github.com/hirewire/hirewire/internal/auth/store"
	"github.com/hirewire/hirewire/pkg/cryptox"
	"github.com/hirewire/hirewire/pkg/idx"
	"github.com/hirewire/hirewire/pkg/jwtx"
	"github.com/hirewire/hirewire/pkg/slogx"
)

var (
	// ErrUserNotFound is kept distinct from ErrInvalidCredentials inside
	// the service; the HTTP boundary collapses both into one opaque
	// rejection so account existence can't be probed via login.
	ErrUserNotFound = errors.New("user_not_found")

	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAlreadyExists      = errors.New("already_exists")
)

// AuthService authenticates credentials and mints access tokens. It is
// stateless per call; the signer, TTL and hash cost are fixed at startup.
type AuthService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
	HashCost  int

	// Now is the clock used for minting; nil means time.Now. Minting and
	// expiry checks must share one trusted time source, so don't get
	// clever here outside of tests.
	Now func() time.Time
}

// Login verifies a subject/password pair against the stored hash and mints
// an access token on success. The returned user is safe to expose minus
// its PasswordHash field, which callers must never serialize.
func (s *AuthService) Login(ctx context.Context, subjectID, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetBySubjectID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrUserNotFound
		}
		return domain.User{}, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login rejected", "subject", subjectID)
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.mintToken(user)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

// Register creates a credential record and mints a token identically to
// Login. The existence pre-check and the insert are not atomic; the
// store's uniqueness constraint catches the race and both paths surface as
// ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, subjectID, password, displayName string) (domain.User, string, error) {
	exists, err := s.Store.Users().ExistsBySubjectID(ctx, subjectID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("check subject: %w", err)
	}
	if exists {
		return domain.User{}, "", ErrAlreadyExists
	}

	hash, err := cryptox.HashPassword(password, s.HashCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	if displayName == "" {
		displayName = subjectID
	}

	user := domain.User{
		ID:           idx.New().String(),
		SubjectID:    subjectID,
		DisplayName:  displayName,
		PasswordHash: hash,
		CreatedAt:    s.now(),
		UpdatedAt:    s.now(),
	}

	if err := s.Store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrAlreadyExists
		}
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.mintToken(user)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) mintToken(user domain.User) (string, error) {
	claims := jwtx.NewAccessClaims(user.SubjectID, user.DisplayName, s.Issuer, s.AccessTTL, s.now())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
