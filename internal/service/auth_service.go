package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/storage"
	"fitsync/fitness-tracker/internal/store"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("authentication failed: invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrHashingFailed      = errors.New("failed to hash password")
	ErrTokenGeneration    = errors.New("failed to generate authentication token")
)

// AuthService is the session and identity manager. The session is either
// anonymous or holds an authenticated user, represented by the token the
// caller carries; CurrentUser resolves a token back to its user instead of
// panicking on missing context.
type AuthService interface {
	Register(ctx context.Context, payload validation.Registration) (domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user domain.User, err error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context, token string) (domain.User, error)
}

// sessionRecord is what gets mirrored under the "session" snapshot key.
// It is a convenience for single-user installs; the JWT itself is the
// source of truth.
type sessionRecord struct {
	UserID   string    `json:"userId,omitempty"`
	Token    string    `json:"token,omitempty"`
	IssuedAt time.Time `json:"issuedAt,omitempty"`
}

type authService struct {
	store         *store.Store
	kv            storage.Store
	logger        *slog.Logger
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(st *store.Store, kv storage.Store, logger *slog.Logger, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		store:         st,
		kv:            kv,
		logger:        logger,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register validates the payload (schema, password policy and the
// confirm-password rule, all evaluated together) and creates the account.
// The session stays anonymous; callers chain Login if they want a token.
func (s *authService) Register(ctx context.Context, payload validation.Registration) (domain.User, error) {
	if errs := validation.ValidateRegistration(payload); errs != nil {
		return domain.User{}, errs
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, ErrHashingFailed
	}

	user, err := s.store.CreateUser(domain.User{
		Name:         payload.Name,
		Email:        payload.Email,
		PasswordHash: string(hashed),
		Role:         payload.Role,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login authenticates against the user collection and, on success, issues
// a fresh token, stamps lastLogin and mirrors the session snapshot.
func (s *authService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.store.UserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", domain.User{}, ErrAccountDeactivated
	}

	token, err := s.generateJWT(&user)
	if err != nil {
		return "", domain.User{}, ErrTokenGeneration
	}

	if err := s.store.StampLastLogin(user.ID); err == nil {
		user, _ = s.store.UserByID(user.ID)
	}

	s.persistSession(ctx, sessionRecord{UserID: user.ID, Token: token, IssuedAt: time.Now().UTC()})

	user.PasswordHash = ""
	return token, user, nil
}

// Logout discards the persisted session snapshot. There is no server-side
// token registry to invalidate; tokens simply expire.
func (s *authService) Logout(ctx context.Context) error {
	s.persistSession(ctx, sessionRecord{})
	return nil
}

// CurrentUser resolves a bearer token to its user. Any parse or lookup
// failure maps to ErrNotAuthenticated.
func (s *authService) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid || claims.UserID == "" {
		return domain.User{}, ErrNotAuthenticated
	}

	user, err := s.store.UserByID(claims.UserID)
	if err != nil {
		return domain.User{}, ErrNotAuthenticated
	}
	user.PasswordHash = ""
	return user, nil
}

// persistSession writes the session snapshot, best-effort.
func (s *authService) persistSession(ctx context.Context, rec sessionRecord) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := s.kv.Save(ctx, storage.KeySession, raw); err != nil {
		s.logger.Warn("persistence warning", "op", "save session", "error", err)
	}
}

// --- JWT Helper ---

// Claims defines the structure of the JWT payload.
type Claims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// generateJWT creates a new signed token for the given user.
func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fitness-tracker",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
