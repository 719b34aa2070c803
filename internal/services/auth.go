package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/models"
	"github.com/naturedex/naturedex-server/internal/repositories"
)

// Error variables
var (
	ErrEmailInUse = errors.New("email already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// bcryptCost is the work factor applied to new password hashes.
const bcryptCost = 10

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// TokenIssuer defines an interface for issuing signed tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, user *models.User) (string, error)
}

// AuthService handles signup, login and user listing.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Signup registers a new user and returns its public fields. The email
// pre-check gives the common case a clean answer; the unique constraint on
// users.email settles concurrent signups, so a lost race surfaces as the
// same ErrEmailInUse.
func (svc *AuthService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already in use", "email", email)
		return nil, ErrEmailInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			logger.Log.Errorw("email already in use", "email", email)
			return nil, ErrEmailInUse
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user.Public(), nil
}

// Login authenticates a user by email and password and returns a signed
// token plus the public user fields.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("login for unknown email", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	public := user.Public()
	token, err := svc.jwt.Generate(ctx, public)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, public, nil
}

// ListUsers returns the public view of every user record.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].Public())
	}

	return users, nil
}
