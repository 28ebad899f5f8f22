package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-blog-list/internal/config"
	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/store"
	"github.com/MKhiriev/go-blog-list/internal/utils"
	"github.com/MKhiriev/go-blog-list/internal/validators"
	"github.com/MKhiriev/go-blog-list/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the identity
// token lifecycle. Passwords are stored as bcrypt digests.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	idGenerator    IDGenerator
	hasher         *utils.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without expiry.
	tokenDuration time.Duration

	// dummyDigest is compared against when the username is unknown, so
	// that both login failures cost one bcrypt comparison.
	dummyDigest     string
	dummyDigestOnce sync.Once

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	validator validators.Validator,
	idGenerator IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	tokenDuration := cfg.TokenDuration
	if cfg.TokenNoExpiry {
		tokenDuration = 0
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		idGenerator:    idGenerator,
		hasher:         utils.NewPasswordHasher(cfg.PasswordHashCost),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  tokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user or:
//   - a *validators.ValidationError for missing or short credentials.
//   - a wrapped store.ErrUsernameTaken when the username is in use.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("username", request.Username).Msg("invalid registration data")
		return models.User{}, err
	}

	digest, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("password hashing failed")
		return models.User{}, err
	}

	user := models.User{
		ID:           a.idGenerator.Generate(),
		Username:     request.Username,
		Name:         request.Name,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Missing fields, an unknown username and a wrong password all yield
// ErrWrongCredentials, so a caller cannot tell which one happened.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		log.Debug().Msg("login without username or password")
		return models.User{}, ErrWrongCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.Verify(request.Password, a.getDummyDigest())
		log.Debug().Str("username", request.Username).Msg("login for unknown user")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, foundUser.PasswordHash) {
		log.Debug().Str("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT carrying the user's id and username.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	identity := models.Identity{ID: user.ID, Username: user.Username}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenIsExpired. Every other failure (bad
// signature, malformed input, wrong algorithm or issuer, missing id) yields
// ErrInvalidToken. The underlying jwt error stays in the chain.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrInvalidToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	case err != nil:
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}

func (a *authService) getDummyDigest() string {
	a.dummyDigestOnce.Do(func() {
		digest, err := a.hasher.Hash(a.idGenerator.Generate())
		if err != nil {
			a.logger.Err(err).Msg("failed to prepare dummy password digest")
			return
		}
		a.dummyDigest = digest
	})
	return a.dummyDigest
}
