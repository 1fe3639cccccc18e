package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/repos"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterUser(ctx context.Context, userID, password, userName string) error
	LoginUser(ctx context.Context, userID, password string) (string, string, error)
	VerifyToken(tokenString string) (string, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	log          *logger.Logger
	userRepo     repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, userRepo repos.UserRepo, jwtSecretKey string, accessTTL time.Duration) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:          serviceLog,
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, userID, password, userName string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return apierr.InvalidInput(fmt.Errorf("a user id is required to register"))
	}
	if password == "" {
		return apierr.InvalidInput(fmt.Errorf("a password is required to register"))
	}
	if strings.TrimSpace(userName) == "" {
		return apierr.InvalidInput(fmt.Errorf("a user name is required to register"))
	}

	exists, err := as.userRepo.Exists(ctx, nil, userID)
	if err != nil {
		return apierr.Store(fmt.Errorf("failed to check existing user: %w", err))
	}
	if exists {
		return apierr.Conflict(fmt.Errorf("user already exists"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apierr.Store(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &types.User{
		UserID:   userID,
		Password: string(hashed),
		UserName: userName,
	}
	if err := as.userRepo.Create(ctx, nil, user); err != nil {
		return apierr.Store(fmt.Errorf("failed to create user: %w", err))
	}
	as.log.Info("User registered", "user_id", userID)
	return nil
}

// LoginUser returns the display name and a signed access token.
func (as *authService) LoginUser(ctx context.Context, userID, password string) (string, string, error) {
	user, err := as.userRepo.GetByID(ctx, nil, strings.TrimSpace(userID))
	if err != nil {
		return "", "", apierr.Store(fmt.Errorf("failed to fetch user: %w", err))
	}
	if user == nil {
		return "", "", apierr.Unauthorized(fmt.Errorf("invalid credentials"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", apierr.Unauthorized(fmt.Errorf("invalid credentials"))
	}

	token, err := as.generateAccessToken(user)
	if err != nil {
		return "", "", apierr.Store(fmt.Errorf("failed to sign access token: %w", err))
	}
	return user.UserName, token, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

// VerifyToken validates the bearer token and returns the embedded user id.
func (as *authService) VerifyToken(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return "", apierr.Unauthorized(fmt.Errorf("could not validate credentials: %w", err))
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return "", apierr.Unauthorized(fmt.Errorf("invalid or expired token"))
	}
	if claims.Subject == "" {
		return "", apierr.Unauthorized(fmt.Errorf("token has no subject"))
	}
	return claims.Subject, nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
