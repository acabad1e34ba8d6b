package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/repositories/session"
	"github.com/dmitrijs2005/newsboard/internal/repositories/users"
)

// hashCost is lowered by tests.
var hashCost = bcrypt.DefaultCost

// AuthService defines account operations.
//
// Contract:
//   - SignUp: create a user with role user.
//   - Authenticate: verify credentials.
//   - Register: SignUp and persist the session pointer.
//   - Login: Authenticate and persist the session pointer.
//   - Logout: clear the pointer.
//   - Current: resolve the persisted pointer to a Session.
//   - SessionFor: resolve a Session for a token-authenticated user id.
//   - EnsureAdmin: create the administrator account when none exists.
type AuthService interface {
	SignUp(ctx context.Context, username, password string) (models.Session, error)
	Authenticate(ctx context.Context, username, password string) (models.Session, error)
	Register(ctx context.Context, username, password string) (models.Session, error)
	Login(ctx context.Context, username, password string) (models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.Session, error)
	SessionFor(ctx context.Context, userID string) (models.Session, error)
	EnsureAdmin(ctx context.Context, password string) error
}

type authService struct {
	users   users.Repository
	session session.Repository
	logger  logging.Logger
}

func NewAuthService(u users.Repository, s session.Repository, logger logging.Logger) AuthService {
	return &authService{users: u, session: s, logger: logger.With("component", "auth")}
}

func validateCredentials(username, password string) error {
	if username == "" {
		return common.Required("username")
	}
	if password == "" {
		return common.Required("password")
	}
	if len([]rune(username)) < common.MinCredentialLength {
		return common.TooShort("username", common.MinCredentialLength)
	}
	if len([]rune(password)) < common.MinCredentialLength {
		return common.TooShort("password", common.MinCredentialLength)
	}
	if len([]rune(username)) > common.MaxUsernameLength {
		return common.TooLong("username", common.MaxUsernameLength)
	}
	if len(password) > common.MaxPasswordLength {
		return common.TooLong("password", common.MaxPasswordLength)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, username, password string) (models.Session, error) {
	s, err := a.SignUp(ctx, username, password)
	if err != nil {
		return models.Session{}, err
	}
	if err := a.session.Set(ctx, s.UserID); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (a *authService) SignUp(ctx context.Context, username, password string) (models.Session, error) {
	username, password = strings.TrimSpace(username), strings.TrimSpace(password)
	if err := validateCredentials(username, password); err != nil {
		return models.Session{}, err
	}

	_, err := a.users.GetByUsername(ctx, username)
	if err == nil {
		return models.Session{}, common.ErrUsernameTaken
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return models.Session{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.Session{}, err
	}

	u := models.User{
		ID:           newID(),
		Username:     username,
		Password:     hash,
		RegisteredAt: now(),
		Role:         models.RoleUser,
	}
	if err := a.users.Save(ctx, u); err != nil {
		return models.Session{}, fmt.Errorf("save user: %w", err)
	}

	a.logger.Info(ctx, "user registered", "user_id", u.ID, "username", u.Username)
	return models.SessionOf(u), nil
}

func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	s, err := a.Authenticate(ctx, username, password)
	if err != nil {
		return models.Session{}, err
	}
	if err := a.session.Set(ctx, s.UserID); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (a *authService) Authenticate(ctx context.Context, username, password string) (models.Session, error) {
	username, password = strings.TrimSpace(username), strings.TrimSpace(password)
	if username == "" {
		return models.Session{}, common.Required("username")
	}
	if password == "" {
		return models.Session{}, common.Required("password")
	}

	u, err := a.users.GetByUsername(ctx, username)
	if errors.Is(err, common.ErrorNotFound) {
		return models.Session{}, common.ErrUserNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("lookup user: %w", err)
	}

	ok, legacy := checkPassword(u.Password, password)
	if !ok {
		a.logger.Warn(ctx, "login failed", "username", username)
		return models.Session{}, common.ErrInvalidCredentials
	}
	if legacy {
		a.upgradePassword(ctx, u, password)
	}
	return models.SessionOf(u), nil
}

// HashPassword returns the stored form of a new credential.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// checkPassword reports whether password matches stored and whether stored
// is a legacy plain-text credential.
func checkPassword(stored, password string) (ok bool, legacy bool) {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, true
}

func (a *authService) upgradePassword(ctx context.Context, u models.User, password string) {
	hash, err := HashPassword(password)
	if err != nil {
		a.logger.Error(ctx, "rehash legacy password", "user_id", u.ID, "error", err)
		return
	}
	u.Password = hash
	if err := a.users.Save(ctx, u); err != nil {
		a.logger.Error(ctx, "save rehashed password", "user_id", u.ID, "error", err)
		return
	}
	a.logger.Info(ctx, "legacy password upgraded", "user_id", u.ID)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) Current(ctx context.Context) (models.Session, error) {
	id, err := a.session.Get(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if id == "" {
		return models.Session{}, common.ErrNotLoggedIn
	}

	u, err := a.users.GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return models.Session{}, common.ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, err
	}
	return models.SessionOf(u), nil
}

func (a *authService) SessionFor(ctx context.Context, userID string) (models.Session, error) {
	u, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return models.Session{}, common.ErrorUnauthorized
	}
	if err != nil {
		return models.Session{}, err
	}
	return models.SessionOf(u), nil
}

// EnsureAdmin promotes an existing "admin" account or creates one with
// password when no user holds the admin role.
func (a *authService) EnsureAdmin(ctx context.Context, password string) error {
	all, err := a.users.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	for _, u := range all {
		if u.IsAdmin() {
			return nil
		}
	}

	for _, u := range all {
		if u.Username == models.AdminUsername {
			u.Role = models.RoleAdmin
			a.logger.Info(ctx, "promoting existing admin account", "user_id", u.ID)
			return a.users.Save(ctx, u)
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		ID:           newID(),
		Username:     models.AdminUsername,
		Password:     hash,
		Email:        "admin@example.com",
		RegisteredAt: now(),
		Role:         models.RoleAdmin,
	}
	if err := a.users.Save(ctx, admin); err != nil {
		return fmt.Errorf("save admin: %w", err)
	}
	a.logger.Info(ctx, "admin account created", "user_id", admin.ID)
	return nil
}
