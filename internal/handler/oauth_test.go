package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonshub/signup/internal/github"
	"github.com/commonshub/signup/internal/handler"
)

type fakeProvider struct {
	authURL    string
	authURLErr error

	profile      github.Profile
	authorizeErr error
}

func (p *fakeProvider) AuthURL() (string, error) {
	return p.authURL, p.authURLErr
}

func (p *fakeProvider) Authorize(_ context.Context, _, _ string) (github.Profile, error) {
	if p.authorizeErr != nil {
		return github.Profile{}, p.authorizeErr
	}
	return p.profile, nil
}

func TestOAuthRedirect(t *testing.T) {
	provider := &fakeProvider{authURL: "https://github.com/login/oauth/authorize?state=abc"}
	h := handler.NewOAuthHandler(provider, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/github", nil)
	rec := httptest.NewRecorder()
	h.Redirect(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, provider.authURL, rec.Header().Get("Location"))
}

func TestOAuthCallbackSuccess(t *testing.T) {
	provider := &fakeProvider{profile: github.Profile{
		Login: "janedoe",
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}}
	h := handler.NewOAuthHandler(provider, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/github/callback?code=abc&state=xyz", nil)
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"login":"janedoe"`)
	assert.Contains(t, rec.Body.String(), `"email":"jane@example.com"`)
}

func TestOAuthCallbackMissingParams(t *testing.T) {
	h := handler.NewOAuthHandler(&fakeProvider{}, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/github/callback?code=abc", nil)
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOAuthCallbackErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"expired state", github.ErrInvalidState, http.StatusBadRequest},
		{"bad code", github.ErrInvalidCode, http.StatusBadRequest},
		{"no verified email", github.ErrNoVerifiedEmail, http.StatusUnprocessableEntity},
		{"api down", github.ErrAPIFailure, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewOAuthHandler(&fakeProvider{authorizeErr: tt.err}, discardLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/github/callback?code=abc&state=xyz", nil)
			rec := httptest.NewRecorder()
			h.Callback(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
