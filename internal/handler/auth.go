package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/multivion/auth-api/internal/payload"
	"github.com/multivion/auth-api/internal/usecase"
)

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := h.decodeForm(r, &req); err != nil {
		h.renderPage(w, http.StatusBadRequest, page{
			Title:        "Registration Failed",
			Message:      h.validationMessage(err),
			RedirectURL:  registerPage,
			RedirectText: "Try Again",
		})
		return
	}

	err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})

	switch {
	case err == nil:
		h.renderPage(w, http.StatusOK, page{
			Title:        "Registration Successful!",
			Message:      "We've sent a verification link to your email address. Please check your inbox (and spam folder) to complete registration.",
			Success:      true,
			RedirectURL:  homePage,
			RedirectText: "Return to Home",
		})
	case errors.Is(err, usecase.ErrEmailTaken):
		h.renderPage(w, http.StatusOK, page{
			Title:        "Registration Failed",
			Message:      "This email is already registered. Please use a different email address or try to log in.",
			RedirectURL:  registerPage,
			RedirectText: "Try Again",
		})
	case errors.Is(err, usecase.ErrUsernameTaken):
		h.renderPage(w, http.StatusOK, page{
			Title:        "Registration Failed",
			Message:      "This username is already taken. Please choose a different username.",
			RedirectURL:  registerPage,
			RedirectText: "Try Again",
		})
	default:
		h.logger.Error().Err(err).Msg("failed to register user")
		h.internalErrorPage(w,
			"Registration Error",
			"We encountered an issue while processing your registration. Please try again later or contact support if the problem persists.",
			registerPage, "Try Again")
	}
}

func (h *authHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	err := h.authUsecase.VerifyEmail(r.Context(), token)

	switch {
	case err == nil:
		h.renderPage(w, http.StatusOK, page{
			Title:        "Email Verified Successfully!",
			Message:      "Your email address has been successfully verified. You can now log in to your account.",
			Success:      true,
			RedirectURL:  loginPage,
			RedirectText: "Go to Login",
		})
	case errors.Is(err, usecase.ErrInvalidOrExpiredToken):
		h.renderPage(w, http.StatusOK, page{
			Title:        "Verification Failed",
			Message:      "The verification link is invalid or has expired. Please request a new verification email.",
			RedirectURL:  registerPage,
			RedirectText: "Go to Registration",
		})
	default:
		h.logger.Error().Err(err).Msg("failed to verify email")
		h.internalErrorPage(w,
			"Verification Error",
			"An unexpected error occurred during verification. Please try again later or contact support.",
			homePage, "Go to Home")
	}
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := h.decodeForm(r, &req); err != nil {
		h.renderPage(w, http.StatusBadRequest, page{
			Title:        "Login Failed",
			Message:      h.validationMessage(err),
			RedirectURL:  loginPage,
			RedirectText: "Try Again",
		})
		return
	}

	token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})

	switch {
	case err == nil:
		h.setSessionCookie(w, token)
		h.renderPage(w, http.StatusOK, page{
			Title:        "Login Successful!",
			Message:      "You have successfully logged in. Redirecting you to your dashboard...",
			Success:      true,
			RedirectURL:  dashboardPage,
			RedirectText: "Go to Dashboard",
			AutoRedirect: true,
		})
	case errors.Is(err, usecase.ErrAccountNotFound):
		h.renderPage(w, http.StatusUnauthorized, page{
			Title:        "Login Failed",
			Message:      "No account found with this email address. Please check your email or register for a new account.",
			RedirectURL:  loginPage,
			RedirectText: "Try Again",
		})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		h.renderPage(w, http.StatusUnauthorized, page{
			Title:        "Login Failed",
			Message:      "The password you entered is incorrect. Please try again.",
			RedirectURL:  loginPage,
			RedirectText: "Try Again",
		})
	case errors.Is(err, usecase.ErrAccountNotVerified):
		h.renderPage(w, http.StatusForbidden, page{
			Title:        "Account Not Verified",
			Message:      "Your email address has not been verified yet. Please check your email for the verification link.",
			Icon:         "!",
			RedirectURL:  loginPage,
			RedirectText: "Go to Login",
		})
	default:
		h.logger.Error().Err(err).Msg("failed to log in user")
		h.internalErrorPage(w,
			"Login Error",
			"An error occurred during login. Please try again later.",
			loginPage, "Try Again")
	}
}

// setSessionCookie delivers the session token as an HTTP-only, same-site
// restricted cookie. The token itself is the full credential; there is no
// server-side session store, so revocation before expiry is not possible.
func (h *authHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}
