package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/multivion/auth-api/internal/config"
	"github.com/multivion/auth-api/internal/mailer/templates"
	"github.com/multivion/auth-api/internal/repository"
	"github.com/multivion/auth-api/internal/security"
)

// PasswordResetUsecase defines the business logic for the forgot/reset
// password flow.
type PasswordResetUsecase interface {
	// RequestPasswordReset initiates the password reset process for a given email.
	RequestPasswordReset(ctx context.Context, email string) error

	// ValidateResetToken checks that a reset token matches a record and has
	// not expired.
	ValidateResetToken(ctx context.Context, token string) error

	// ResetPassword replaces the password bound to a valid reset token.
	ResetPassword(ctx context.Context, token, password, confirmPassword string) error
}

var ErrPasswordMismatch = errors.New("passwords do not match")

type passwordResetUsecase struct {
	userRepo repository.UserRepository
	mailer   Mailer
	cfg      *config.Config
}

// NewPasswordResetUsecase creates a new instance of PasswordResetUsecase.
func NewPasswordResetUsecase(
	userRepo repository.UserRepository,
	mailer Mailer,
	cfg *config.Config,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
	}
}

func (u *passwordResetUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// To prevent email enumeration, do not reveal that the email does not exist.
			return nil
		}
		return err
	}

	resetToken, err := security.GenerateToken()
	if err != nil {
		return err
	}

	// Overwrites any previous pending reset.
	expires := time.Now().Add(u.cfg.ResetTokenTTL)
	if err := u.userRepo.SetResetToken(ctx, user.ID.Hex(), resetToken, expires); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/api/auth/reset-password/%s", u.cfg.BaseURL, resetToken)
	htmlBody, err := templates.RenderHTML(templates.ResetPassword, templates.EmailData{
		Username:  user.Username,
		ActionURL: resetLink,
		ExpiresIn: u.cfg.ResetTokenTTL.String(),
	})
	if err != nil {
		return err
	}

	return u.mailer.SendHTML([]string{user.Email}, "Password Reset Request", htmlBody)
}

func (u *passwordResetUsecase) ValidateResetToken(ctx context.Context, token string) error {
	if _, err := u.userRepo.GetUserByResetToken(ctx, token, time.Now()); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	return nil
}

func (u *passwordResetUsecase) ResetPassword(ctx context.Context, token, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	user, err := u.userRepo.GetUserByResetToken(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return err
	}

	// Clears both reset fields along with the hash update.
	return u.userRepo.UpdatePassword(ctx, user.ID.Hex(), passwordHash)
}
