// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle: access tokens are stateless, refresh tokens are persisted rows
// that are consumed (deleted) exactly once when exchanged.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// users and to maintain the persisted refresh-token set.
	userRepository store.UserRepository

	// accessTokenSecret signs short-lived access tokens.
	accessTokenSecret string

	// refreshTokenSecret signs long-lived refresh tokens. Kept distinct from
	// accessTokenSecret so a leaked access token can never pass as a refresh
	// token.
	refreshTokenSecret string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenDuration controls how long a newly issued access token
	// remains valid.
	accessTokenDuration time.Duration

	// refreshTokenDuration controls how long a newly issued refresh token
	// remains valid.
	refreshTokenDuration time.Duration

	// bcryptCost is the bcrypt work factor for password hashing.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		accessTokenSecret:    cfg.AccessTokenSecret,
		refreshTokenSecret:   cfg.RefreshTokenSecret,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		bcryptCost:           cfg.BcryptCost,
		logger:               logger,
	}
}

// Register creates a new user account and opens its first session.
//
// The password is bcrypt-hashed before the user record is persisted; the
// cleartext never reaches the repository. A missing role defaults to "user".
//
// Returns the persisted user and a fresh token pair, or:
//   - ErrInvalidDataProvided if email or password is empty or the role is
//     not a known value.
//   - A wrapped storage error if persistence fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, user models.User, password string) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if !user.Role.Valid() {
		log.Error().Str("role", string(user.Role)).Msg("invalid role provided")
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = passwordHash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	pair, err := a.issueTokenPair(ctx, registeredUser)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	return registeredUser, pair, nil
}

// Login authenticates an existing user and opens a new session.
//
// An unknown email and a wrong password both surface as the same
// ErrInvalidCredentials, so callers cannot probe which emails are
// registered. Sessions are independent: tokens issued here do not affect
// refresh tokens held by the user's other sessions.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.TokenPair{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.ComparePassword(foundUser.PasswordHash, password); err != nil {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := a.issueTokenPair(ctx, foundUser)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	return foundUser, pair, nil
}

// Refresh exchanges a refresh token for a fresh token pair, consuming the
// presented token in the process. Rotation is single-use: the stored row is
// deleted before new tokens are issued, and that DELETE is the serialization
// point — of any number of concurrent exchanges of the same token, at most
// one succeeds.
//
// Errors:
//   - ErrMissingToken for an empty token string.
//   - ErrTokenIsExpired / ErrTokenIsInvalid from signature and claim checks.
//   - ErrTokenRevoked when the token was already consumed, revoked by
//     logout, or the account no longer exists.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.TokenPair{}, ErrMissingToken
	}

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenSecret, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.TokenPair{}, ErrTokenIsExpired
		}

		log.Err(err).Msg("refresh token validation failed")
		return models.TokenPair{}, ErrTokenIsInvalid
	}

	if err := a.userRepository.DeleteRefreshToken(ctx, refreshToken); err != nil {
		if errors.Is(err, store.ErrRefreshTokenNotFound) {
			return models.TokenPair{}, ErrTokenRevoked
		}

		log.Err(err).Msg("consuming refresh token failed")
		return models.TokenPair{}, fmt.Errorf("consuming refresh token failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, ErrTokenRevoked
		}

		log.Err(err).Int64("id", token.UserID).Msg("user search by id failed")
		return models.TokenPair{}, fmt.Errorf("user search by id failed: %w", err)
	}

	pair, err := a.issueTokenPair(ctx, user)
	if err != nil {
		return models.TokenPair{}, err
	}

	// best-effort prune of rows that expired without ever being exchanged
	if err := a.userRepository.DeleteExpiredRefreshTokens(ctx, user.UserID); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("pruning expired refresh tokens failed")
	}

	return pair, nil
}

// Logout revokes the presented refresh token. The operation is idempotent:
// a malformed, expired, already-consumed, or foreign token reports success,
// so a client can always log out. A request with no token at all is still
// an error; only presented tokens get the lenient treatment. Beyond that,
// only an actual storage failure surfaces.
func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return ErrMissingToken
	}

	if _, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenSecret, a.tokenIssuer); err != nil {
		return nil
	}

	if err := a.userRepository.DeleteRefreshToken(ctx, refreshToken); err != nil {
		if errors.Is(err, store.ErrRefreshTokenNotFound) {
			return nil
		}

		log.Err(err).Msg("revoking refresh token failed")
		return fmt.Errorf("revoking refresh token failed: %w", err)
	}

	return nil
}

// ParseAccessToken validates and parses a raw access-token string.
//
// Expired tokens surface as ErrTokenIsExpired; every other validation
// failure (bad signature, wrong issuer, malformed claims) is normalised to
// ErrTokenIsInvalid. The two outcomes stay distinct so the authorization
// layer can answer 401 for the former and 403 for the latter.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.accessTokenSecret, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}

		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// GetUser retrieves the user record behind an authenticated token subject.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// issueTokenPair generates a fresh access/refresh pair for the user and
// persists the refresh token. Old refresh rows of the same user are left
// untouched, so sessions on other devices stay alive.
func (a *authService) issueTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	accessToken, err := utils.GenerateAccessToken(a.tokenIssuer, user, a.accessTokenDuration, a.accessTokenSecret)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("access token generation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateRefreshToken(a.tokenIssuer, user.UserID, a.refreshTokenDuration, a.refreshTokenSecret)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("refresh token generation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err := a.userRepository.AddRefreshToken(ctx, user.UserID, refreshToken.String(), refreshToken.ExpiresAt.Time); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("persisting refresh token failed")
		return models.TokenPair{}, fmt.Errorf("persisting refresh token failed: %w", err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.String(),
		RefreshToken: refreshToken.String(),
	}, nil
}
