package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/form"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rs/zerolog"

	"github.com/multivion/auth-api/internal/config"
	"github.com/multivion/auth-api/internal/usecase"
)

// Redirect targets of the rendered pages, served by the front end.
const (
	homePage           = "/client/public/index.html"
	registerPage       = "/client/public/register.html"
	loginPage          = "/client/public/login.html"
	forgotPasswordPage = "/client/public/forgot-password.html"
	dashboardPage      = "/dashboard"
)

type authHandler struct {
	authUsecase          usecase.AuthUsecase
	passwordResetUsecase usecase.PasswordResetUsecase
	decoder              *form.Decoder
	validate             *validator.Validate
	trans                ut.Translator
	logger               *zerolog.Logger
	cfg                  *config.Config
}

func newAuthHandler(
	logger *zerolog.Logger,
	cfg *config.Config,
	authUsecase usecase.AuthUsecase,
	passwordResetUsecase usecase.PasswordResetUsecase,
) *authHandler {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		logger.Fatal().Err(err).Msg("failed to register validator translations")
	}

	return &authHandler{
		authUsecase:          authUsecase,
		passwordResetUsecase: passwordResetUsecase,
		decoder:              form.NewDecoder(),
		validate:             validate,
		trans:                trans,
		logger:               logger,
		cfg:                  cfg,
	}
}

// decodeForm parses the urlencoded request body into dst and validates it.
func (h *authHandler) decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	if err := h.decoder.Decode(dst, r.PostForm); err != nil {
		return err
	}

	return h.validate.Struct(dst)
}

// validationMessage turns a validation failure into copy fit for a page.
func (h *authHandler) validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "The submitted form could not be read. Please try again."
	}

	messages := make([]string, 0, len(verrs))
	for _, fieldErr := range verrs {
		messages = append(messages, fieldErr.Translate(h.trans))
	}

	return strings.Join(messages, ". ") + "."
}
