package github_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/commonshub/signup/internal/github"
)

func testService(t *testing.T, api http.Handler) *github.Service {
	t.Helper()

	apiSrv := httptest.NewServer(api)
	t.Cleanup(apiSrv.Close)

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gh-token","token_type":"bearer"}`))
	}))
	t.Cleanup(tokenSrv.Close)

	svc := github.NewService(github.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "https://signup.example.com/api/v1/auth/github/callback",
		Scopes:       []string{"user:email"},
		StateTTL:     time.Minute,
	},
		github.WithAPIBaseURL(apiSrv.URL),
		github.WithEndpoint(oauth2.Endpoint{
			AuthURL:  tokenSrv.URL + "/authorize",
			TokenURL: tokenSrv.URL + "/access_token",
		}),
	)
	t.Cleanup(svc.Close)

	return svc
}

func issueState(t *testing.T, svc *github.Service) string {
	t.Helper()

	authURL, err := svc.AuthURL()
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	state := parsed.Query().Get("state")
	require.NotEmpty(t, state)
	return state
}

func TestAuthURL(t *testing.T) {
	svc := testService(t, http.NotFoundHandler())

	authURL, err := svc.AuthURL()
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "user:email", q.Get("scope"))
	assert.NotEmpty(t, q.Get("state"))
	assert.True(t, strings.HasSuffix(parsed.Path, "/authorize"))
}

func TestAuthorizeWithPublicEmail(t *testing.T) {
	var gotAuth string
	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"login":"janedoe","name":"Jane  Doe","email":"Jane@Example.com","avatar_url":"https://avatars.example.com/janedoe"}`))
	}))

	profile, err := svc.Authorize(t.Context(), "good-code", issueState(t, svc))
	require.NoError(t, err)

	assert.Equal(t, "Bearer gh-token", gotAuth)
	assert.Equal(t, "janedoe", profile.Login)
	assert.Equal(t, "Jane Doe", profile.Name, "profile name is sanitized")
	assert.Equal(t, "jane@example.com", profile.Email, "email is normalized")
	assert.Equal(t, "https://avatars.example.com/janedoe", profile.AvatarURL)
}

func TestAuthorizeEmailFallback(t *testing.T) {
	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user":
			_, _ = w.Write([]byte(`{"login":"janedoe","name":"Jane","email":""}`))
		case "/user/emails":
			_, _ = w.Write([]byte(`[
				{"email":"old@example.com","primary":false,"verified":true},
				{"email":"jane@example.com","primary":true,"verified":true}
			]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	profile, err := svc.Authorize(t.Context(), "good-code", issueState(t, svc))
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", profile.Email, "primary verified email wins")
}

func TestAuthorizeNoVerifiedEmail(t *testing.T) {
	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user":
			_, _ = w.Write([]byte(`{"login":"janedoe","email":""}`))
		case "/user/emails":
			_, _ = w.Write([]byte(`[{"email":"jane@example.com","primary":true,"verified":false}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	_, err := svc.Authorize(t.Context(), "good-code", issueState(t, svc))
	assert.ErrorIs(t, err, github.ErrNoVerifiedEmail)
}

func TestAuthorizeRejectsUnknownState(t *testing.T) {
	svc := testService(t, http.NotFoundHandler())

	_, err := svc.Authorize(t.Context(), "good-code", "forged-state")
	assert.ErrorIs(t, err, github.ErrInvalidState)
}

func TestAuthorizeStateIsSingleUse(t *testing.T) {
	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"login":"janedoe","email":"jane@example.com"}`))
	}))

	state := issueState(t, svc)

	_, err := svc.Authorize(t.Context(), "good-code", state)
	require.NoError(t, err)

	_, err = svc.Authorize(t.Context(), "good-code", state)
	assert.ErrorIs(t, err, github.ErrInvalidState)
}

func TestAuthorizeBadCode(t *testing.T) {
	svc := testService(t, http.NotFoundHandler())

	_, err := svc.Authorize(t.Context(), "bad-code", issueState(t, svc))
	assert.ErrorIs(t, err, github.ErrInvalidCode)
}
