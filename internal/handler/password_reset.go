package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/multivion/auth-api/internal/payload"
	"github.com/multivion/auth-api/internal/usecase"
)

// resetSentMessage is rendered whether or not the email matches an account,
// so the response does not confirm account existence.
const resetSentMessage = "If an account exists with this email, we've sent a password reset link. Please check your inbox (and spam folder)."

func (h *authHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req payload.ForgotPasswordRequest
	if err := h.decodeForm(r, &req); err != nil {
		h.renderPage(w, http.StatusBadRequest, page{
			Title:        "Password Reset Failed",
			Message:      h.validationMessage(err),
			RedirectURL:  forgotPasswordPage,
			RedirectText: "Try Again",
		})
		return
	}

	if err := h.passwordResetUsecase.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.logger.Error().Err(err).Msg("failed to request password reset")
		h.internalErrorPage(w,
			"Password Reset Error",
			"An error occurred while processing your request. Please try again later.",
			forgotPasswordPage, "Try Again")
		return
	}

	h.renderPage(w, http.StatusOK, page{
		Title:        "Reset Email Sent",
		Message:      resetSentMessage,
		Success:      true,
		RedirectURL:  loginPage,
		RedirectText: "Go to Login",
	})
}

func (h *authHandler) ShowResetForm(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	err := h.passwordResetUsecase.ValidateResetToken(r.Context(), token)

	switch {
	case err == nil:
		h.renderResetForm(w, fmt.Sprintf("/api/auth/reset-password/%s", token))
	case errors.Is(err, usecase.ErrInvalidOrExpiredToken):
		h.renderPage(w, http.StatusOK, page{
			Title:        "Password Reset Failed",
			Message:      "The password reset link is invalid or has expired. Please request a new password reset email.",
			RedirectURL:  forgotPasswordPage,
			RedirectText: "Request New Link",
		})
	default:
		h.logger.Error().Err(err).Msg("failed to validate reset token")
		h.internalErrorPage(w,
			"Password Reset Error",
			"An unexpected error occurred while processing your password reset request. Please try again later.",
			forgotPasswordPage, "Try Again")
	}
}

func (h *authHandler) SubmitPasswordReset(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req payload.ResetPasswordRequest
	if err := h.decodeForm(r, &req); err != nil {
		h.renderPage(w, http.StatusBadRequest, page{
			Title:        "Password Reset Failed",
			Message:      h.validationMessage(err),
			RedirectURL:  fmt.Sprintf("/api/auth/reset-password/%s", token),
			RedirectText: "Try Again",
		})
		return
	}

	err := h.passwordResetUsecase.ResetPassword(r.Context(), token, req.Password, req.ConfirmPassword)

	switch {
	case err == nil:
		h.renderPage(w, http.StatusOK, page{
			Title:        "Password Reset Successful!",
			Message:      "Your password has been successfully updated. You can now log in with your new password.",
			Success:      true,
			RedirectURL:  loginPage,
			RedirectText: "Go to Login",
		})
	case errors.Is(err, usecase.ErrPasswordMismatch):
		h.renderPage(w, http.StatusOK, page{
			Title:        "Password Mismatch",
			Message:      "The passwords you entered do not match. Please try again.",
			RedirectURL:  fmt.Sprintf("/api/auth/reset-password/%s", token),
			RedirectText: "Try Again",
		})
	case errors.Is(err, usecase.ErrInvalidOrExpiredToken):
		h.renderPage(w, http.StatusOK, page{
			Title:        "Invalid Reset Link",
			Message:      "The password reset link is invalid or has expired. Please request a new password reset.",
			RedirectURL:  forgotPasswordPage,
			RedirectText: "Request New Link",
		})
	default:
		h.logger.Error().Err(err).Msg("failed to reset password")
		h.internalErrorPage(w,
			"Reset Error",
			"An error occurred while resetting your password. Please try again later.",
			forgotPasswordPage, "Try Again")
	}
}
