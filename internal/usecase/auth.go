package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/multivion/auth-api/internal/auth"
	"github.com/multivion/auth-api/internal/config"
	"github.com/multivion/auth-api/internal/mailer/templates"
	"github.com/multivion/auth-api/internal/model"
	"github.com/multivion/auth-api/internal/repository"
	"github.com/multivion/auth-api/internal/security"
)

// AuthUsecase defines the business logic for registration, email
// verification and login.
type AuthUsecase interface {
	// Register creates a new unverified account and emails a verification link.
	Register(ctx context.Context, params RegisterParams) error

	// VerifyEmail consumes a verification token, marking the account verified.
	VerifyEmail(ctx context.Context, token string) error

	// Login checks the credentials and returns a signed session token.
	Login(ctx context.Context, params LoginParams) (string, error)
}

// Mailer delivers notification emails. The concrete implementation lives in
// the mailer package; tests substitute a fake.
type Mailer interface {
	SendHTML(to []string, subject, htmlBody string) error
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	ErrEmailTaken            = errors.New("email is already registered")
	ErrUsernameTaken         = errors.New("username is already taken")
	ErrAccountNotFound       = errors.New("no account matches this email")
	ErrInvalidCredentials    = errors.New("incorrect password")
	ErrAccountNotVerified    = errors.New("account email is not verified")
	ErrInvalidOrExpiredToken = errors.New("token is invalid or has expired")
)

type authUsecase struct {
	userRepo repository.UserRepository
	jwtAuth  auth.JWTAuthenticator
	mailer   Mailer
	cfg      *config.Config
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	userRepo repository.UserRepository,
	jwtAuth auth.JWTAuthenticator,
	mailer Mailer,
	cfg *config.Config,
) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwtAuth:  jwtAuth,
		mailer:   mailer,
		cfg:      cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) error {
	if _, err := u.userRepo.GetUserByEmail(ctx, params.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if _, err := u.userRepo.GetUserByUsername(ctx, params.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return err
	}

	verificationToken, err := security.GenerateToken()
	if err != nil {
		return err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Username:          params.Username,
		Email:             params.Email,
		PasswordHash:      passwordHash,
		Verified:          false,
		VerificationToken: verificationToken,
	})
	if err != nil {
		// The lookups above race against concurrent registrations; the
		// unique indexes have the final say.
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}

	verificationLink := fmt.Sprintf("%s/api/auth/verify-email/%s", u.cfg.BaseURL, verificationToken)
	htmlBody, err := templates.RenderHTML(templates.VerifyEmail, templates.EmailData{
		Username:  user.Username,
		ActionURL: verificationLink,
	})
	if err != nil {
		return err
	}

	return u.mailer.SendHTML([]string{user.Email}, "Verify your email", htmlBody)
}

func (u *authUsecase) VerifyEmail(ctx context.Context, token string) error {
	user, err := u.userRepo.GetUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	return u.userRepo.MarkVerified(ctx, user.ID.Hex())
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrAccountNotFound
		}
		return "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidCredentials
	}

	if !user.Verified {
		return "", ErrAccountNotVerified
	}

	return u.generateSessionToken(user)
}

func (u *authUsecase) generateSessionToken(user *model.User) (string, error) {
	now := time.Now()
	claims := auth.SessionClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.cfg.SessionTTL)),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID.Hex(),
			Issuer:    u.cfg.JWTIssuer,
			Audience:  jwt.ClaimStrings{u.cfg.JWTIssuer},
		},
	}

	return u.jwtAuth.GenerateToken(claims, u.cfg.JWTSecret)
}
