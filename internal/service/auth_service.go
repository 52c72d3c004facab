package service

import (
	"errors"

	"github.com/nutriscan-api/internal/models"
	"github.com/nutriscan-api/internal/repository"
	"github.com/nutriscan-api/pkg/crypto"
	"github.com/nutriscan-api/pkg/token"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and session resolution
type AuthService struct {
	db        *gorm.DB
	userRepo  *repository.UserRepository
	statsRepo *repository.StatsRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(db *gorm.DB, userRepo *repository.UserRepository, statsRepo *repository.StatsRepository) *AuthService {
	return &AuthService{
		db:        db,
		userRepo:  userRepo,
		statsRepo: statsRepo,
	}
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the session token response
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Register creates a new user together with its default stats row and
// returns a freshly issued session token.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	sessionToken, err := token.New()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Token:        &sessionToken,
	}

	// User and stats row are created together: every registered user must
	// have a stats row.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		return s.statsRepo.WithTx(tx).Create(models.DefaultStats(user.ID))
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: sessionToken, Username: user.Username}, nil
}

// Login authenticates a user and issues a new session token. The new token
// overwrites the stored one, so any prior session stops resolving.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	sessionToken, err := token.New()
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateToken(user.ID, sessionToken); err != nil {
		return nil, err
	}

	return &AuthResponse{Token: sessionToken, Username: user.Username}, nil
}

// ResolveToken maps a bearer token to the user holding it. Tokens have no
// expiry; they stay valid until a later login supersedes them.
func (s *AuthService) ResolveToken(tokenString string) (*models.User, error) {
	user, err := s.userRepo.GetByToken(tokenString)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
