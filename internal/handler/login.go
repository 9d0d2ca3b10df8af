package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/commonshub/signup/internal/directus"
	"github.com/commonshub/signup/internal/form"
	"github.com/commonshub/signup/pkg/logger"
	"github.com/commonshub/signup/pkg/sanitizer"
)

// Authenticator is the slice of the CMS client the login flow needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (directus.Session, error)
}

const (
	sessionCookieName = "session"

	// rememberTTL is the cookie lifetime when the member asked to stay
	// signed in. Without it the cookie is session-scoped.
	rememberTTL = 30 * 24 * time.Hour
)

// LoginHandler authenticates members against the CMS and issues the
// session cookie.
type LoginHandler struct {
	auth Authenticator
	log  *slog.Logger
}

func NewLoginHandler(auth Authenticator, log *slog.Logger) *LoginHandler {
	return &LoginHandler{auth: auth, log: log}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Request body must be form-encoded")
		return
	}

	req, fieldErrs := form.ValidateLogin(r.PostForm)
	if fieldErrs != nil {
		respondFieldErrors(w, fieldErrs)
		return
	}

	session, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, directus.ErrInvalidCredentials) {
			logger.SecurityEvent(ctx, h.log, "login_failed", logger.SeverityMedium,
				slog.String("email", sanitizer.MaskEmail(req.Email)),
				logger.RequestID(requestIDFromContext(ctx)),
			)
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		logger.ServiceError(ctx, h.log, "directus", "login", err,
			logger.RequestID(requestIDFromContext(ctx)),
		)
		respondError(w, http.StatusBadGateway, "Login is temporarily unavailable, please try again later")
		return
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
	if req.Remember != nil && *req.Remember {
		cookie.MaxAge = int(rememberTTL.Seconds())
	}
	http.SetCookie(w, cookie)

	h.log.InfoContext(ctx, "member logged in",
		logger.Component("login"),
		logger.RequestID(requestIDFromContext(ctx)),
		slog.String("email", sanitizer.MaskEmail(req.Email)),
		slog.Bool("remember", req.Remember != nil),
	)

	respondJSON(w, http.StatusOK, map[string]any{
		"email": req.Email,
		// Expires is milliseconds per the CMS contract; clients get seconds.
		"expiresIn": session.Expires / 1000,
	})
}
