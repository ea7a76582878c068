package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/store"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
	"github.com/MKhiriev/go-offline-sync/internal/validators"
	"github.com/MKhiriev/go-offline-sync/models"
)

// authService registers and signs in the owners of synced records and
// issues the bearer tokens the record API requires. Passwords are stored
// as HMAC-SHA256 digests under PasswordHashKey.
type authService struct {
	users     store.UserRepository
	validator validators.Validator

	passwordKey string
	signKey     string
	issuer      string
	tokenTTL    time.Duration

	logger *logger.Logger
}

func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:       users,
		validator:   validators.NewRecordValidator(),
		passwordKey: cfg.PasswordHashKey,
		signKey:     cfg.TokenSignKey,
		issuer:      cfg.TokenIssuer,
		tokenTTL:    cfg.TokenDuration,
		logger:      logger,
	}
}

// RegisterUser stores a new account. The plaintext password never reaches
// the repository. A taken login surfaces as store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.checkCredentials(ctx, user); err != nil {
		log.Warn().Err(err).Str("login", user.Login).Msg("registration rejected")
		return models.User{}, err
	}

	registered, err := a.users.CreateUser(ctx, a.withPasswordHash(user))
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation failed")
		return models.User{}, fmt.Errorf("register %q: %w", user.Login, err)
	}
	return registered, nil
}

// Login returns the stored account if the password matches, otherwise
// ErrWrongPassword. An unknown login surfaces as store.ErrNoUserWasFound.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.checkCredentials(ctx, user); err != nil {
		log.Warn().Err(err).Str("login", user.Login).Msg("login rejected")
		return models.User{}, err
	}

	found, err := a.users.FindUserByLogin(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("find %q: %w", user.Login, err)
	}

	attempt := a.withPasswordHash(user)
	if subtle.ConstantTimeCompare([]byte(found.PasswordHash), []byte(attempt.PasswordHash)) != 1 {
		log.Warn().Int64("user_id", found.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}
	return found, nil
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.IssueToken(a.issuer, user.UserID, a.tokenTTL, a.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken collapses every verification failure into
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, raw string) (models.Token, error) {
	token, err := utils.VerifyToken(raw, a.signKey, a.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

func (a *authService) checkCredentials(ctx context.Context, user models.User) error {
	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (a *authService) withPasswordHash(user models.User) models.User {
	user.PasswordHash = utils.HashString(user.Password, a.passwordKey)
	user.Password = ""
	return user
}
