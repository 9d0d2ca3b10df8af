package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/commonshub/signup/internal/github"
	"github.com/commonshub/signup/pkg/logger"
)

// ProfileProvider is the slice of the GitHub service the OAuth handlers
// need.
type ProfileProvider interface {
	AuthURL() (string, error)
	Authorize(ctx context.Context, code, state string) (github.Profile, error)
}

// OAuthHandler drives the "sign up with GitHub" redirect and callback.
// A completed authorization returns the member's profile so the signup
// form can be prefilled; it does not create the member.
type OAuthHandler struct {
	provider ProfileProvider
	log      *slog.Logger
}

func NewOAuthHandler(provider ProfileProvider, log *slog.Logger) *OAuthHandler {
	return &OAuthHandler{provider: provider, log: log}
}

// Redirect sends the member to GitHub's authorization page.
func (h *OAuthHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.provider.AuthURL()
	if err != nil {
		logger.ServiceError(r.Context(), h.log, "github", "auth_url", err,
			logger.RequestID(requestIDFromContext(r.Context())),
		)
		respondError(w, http.StatusBadGateway, "GitHub signup is temporarily unavailable")
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback completes the authorization and returns the GitHub profile.
func (h *OAuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		respondError(w, http.StatusBadRequest, "Missing code or state parameter")
		return
	}

	profile, err := h.provider.Authorize(ctx, code, state)
	switch {
	case errors.Is(err, github.ErrInvalidState):
		logger.SecurityEvent(ctx, h.log, "oauth_invalid_state", logger.SeverityHigh,
			logger.RequestID(requestIDFromContext(ctx)),
		)
		respondError(w, http.StatusBadRequest, "Authorization expired, please try again")
		return
	case errors.Is(err, github.ErrInvalidCode):
		respondError(w, http.StatusBadRequest, "Authorization failed, please try again")
		return
	case errors.Is(err, github.ErrNoVerifiedEmail):
		respondError(w, http.StatusUnprocessableEntity, "Your GitHub account has no verified email address")
		return
	case err != nil:
		logger.ServiceError(ctx, h.log, "github", "authorize", err,
			logger.RequestID(requestIDFromContext(ctx)),
		)
		respondError(w, http.StatusBadGateway, "GitHub signup is temporarily unavailable")
		return
	}

	h.log.InfoContext(ctx, "github profile fetched",
		logger.Component("oauth"),
		logger.RequestID(requestIDFromContext(ctx)),
		slog.String("login", profile.Login),
	)

	respondJSON(w, http.StatusOK, map[string]github.Profile{"profile": profile})
}
