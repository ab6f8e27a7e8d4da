package service

import (
	"errors"
	"log"
	"time"

	"bendahara-api/config"
	"bendahara-api/internal/model"
	"bendahara-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown identifier and wrong
	// password so callers cannot tell which part failed.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidTokenPayload = errors.New("invalid token payload")
	ErrTokenNotRecognized  = errors.New("refresh token not recognized")
	ErrUserNotFound        = errors.New("user not found")
)

const refreshTokenType = "refresh"

// Seeded on first startup when no admin account exists yet.
const (
	seedAdminUsername = "admin"
	seedAdminEmail    = "bendahara@gmail.com"
	seedAdminPassword = "bendahara"
)

type AuthService struct {
	userRepo    *repository.UserRepository
	refreshRepo *repository.RefreshTokenRepository
	jwtConfig   config.JWTConfig
}

func NewAuthService(userRepo *repository.UserRepository, refreshRepo *repository.RefreshTokenRepository, jwtConfig config.JWTConfig) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		jwtConfig:   jwtConfig,
	}
}

// Login verifies the credentials, mints an access/refresh token pair and
// persists the refresh token. Lookup is by username when provided, otherwise
// by email.
func (s *AuthService) Login(req *model.LoginRequest) (*model.LoginResponse, error) {
	var user *model.User
	var err error
	if req.Username != "" {
		user, err = s.userRepo.FindByUsername(req.Username)
	} else {
		user, err = s.userRepo.FindByEmail(req.Email)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refresh, expiresAt, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	record := &model.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID.String(),
		Token:     refresh,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if err := s.refreshRepo.Create(record); err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user.Summary(),
	}, nil
}

// Refresh exchanges a valid, persisted refresh token for a new access token.
// The refresh token itself is not rotated.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.DecodeToken(refreshToken)
	if err != nil {
		return "", err
	}

	if tokenType, _ := claims["type"].(string); tokenType != refreshTokenType {
		return "", ErrInvalidToken
	}

	if _, err := s.refreshRepo.FindByToken(refreshToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrTokenNotRecognized
		}
		return "", err
	}

	uid, _ := claims["uid"].(string)

	// The re-minted access token carries only the subject id.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"exp": time.Now().Add(time.Duration(s.jwtConfig.AccessExpiresMin) * time.Minute).Unix(),
	})
	return token.SignedString([]byte(s.jwtConfig.Secret))
}

// DecodeToken verifies the signature and expiry of a token and returns its
// claims. Expiry is reported as ErrTokenExpired, every other failure as
// ErrInvalidToken.
func (s *AuthService) DecodeToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveUser maps decoded claims to the stored user. Tokens issued before
// the id-based scheme carry no resolvable uid, so a username claim lookup is
// attempted as a fallback.
func (s *AuthService) ResolveUser(claims jwt.MapClaims) (*model.User, error) {
	uid, _ := claims["uid"].(string)
	if uid == "" {
		return nil, ErrInvalidTokenPayload
	}

	user, err := s.userRepo.FindByID(uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if username, _ := claims["username"].(string); username != "" {
		user, err = s.userRepo.FindByUsername(username)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	return nil, ErrUserNotFound
}

// SeedDefaultAdmin creates the default admin account if neither its username
// nor email is taken. It is idempotent and safe to run on every startup.
func (s *AuthService) SeedDefaultAdmin() error {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(seedAdminUsername, seedAdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:           uuid.New(),
		Username:     seedAdminUsername,
		Email:        seedAdminEmail,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(admin); err != nil {
		// A concurrent seed may have won the unique-constraint race.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return err
	}

	log.Printf("Seeded default admin user %q", seedAdminUsername)
	return nil
}

func (s *AuthService) generateAccessToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":      user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Duration(s.jwtConfig.AccessExpiresMin) * time.Minute).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.Secret))
}

func (s *AuthService) generateRefreshToken(user *model.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.jwtConfig.RefreshExpiresDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"uid":  user.ID.String(),
		"type": refreshTokenType,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	return signed, expiresAt, err
}
