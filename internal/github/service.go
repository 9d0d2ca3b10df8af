package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/commonshub/signup/pkg/sanitizer"
)

const defaultAPIBaseURL = "https://api.github.com"

// Profile is what the signup flow learns about a member who authorized
// via GitHub. Email is always a verified address.
type Profile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// Service drives the OAuth authorization-code flow against GitHub.
type Service struct {
	oauth2Config *oauth2.Config
	states       *StateStore
	apiBaseURL   string
	httpClient   *http.Client
}

type Option func(*Service)

// WithAPIBaseURL points the service at a different GitHub API host.
// Used in tests.
func WithAPIBaseURL(baseURL string) Option {
	return func(s *Service) { s.apiBaseURL = baseURL }
}

// WithEndpoint overrides the OAuth endpoint. Used in tests.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(s *Service) { s.oauth2Config.Endpoint = endpoint }
}

func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     github.Endpoint,
		},
		states:     NewStateStore(cfg.StateTTL),
		apiBaseURL: defaultAPIBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Close releases the state store's background resources.
func (s *Service) Close() {
	s.states.Close()
}

// AuthURL returns the GitHub authorization URL with a fresh CSRF state.
func (s *Service) AuthURL() (string, error) {
	state, err := s.states.Issue()
	if err != nil {
		return "", fmt.Errorf("github: generate state: %w", err)
	}
	return s.oauth2Config.AuthCodeURL(state), nil
}

// Authorize completes the callback: consumes the state, exchanges the
// code, and fetches the member's profile. The returned email is verified;
// accounts without any verified email are rejected.
func (s *Service) Authorize(ctx context.Context, code, state string) (Profile, error) {
	if err := s.states.Consume(state); err != nil {
		return Profile{}, err
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return Profile{}, ErrInvalidCode
	}

	user, err := s.fetchUser(ctx, token.AccessToken)
	if err != nil {
		return Profile{}, err
	}

	email, verified := user.Email, user.Email != ""
	if !verified {
		// Public profile email absent: read the verified list instead.
		email, err = s.fetchVerifiedEmail(ctx, token.AccessToken)
		if err != nil {
			return Profile{}, err
		}
	}

	return Profile{
		Login:     user.Login,
		Name:      sanitizer.SanitizeString(user.Name),
		Email:     sanitizer.SanitizeEmail(email),
		AvatarURL: user.AvatarURL,
	}, nil
}

type apiUser struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type apiEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func (s *Service) fetchUser(ctx context.Context, accessToken string) (apiUser, error) {
	var user apiUser
	if err := s.get(ctx, "/user", accessToken, &user); err != nil {
		return apiUser{}, err
	}
	return user, nil
}

// fetchVerifiedEmail returns the primary verified email, or any verified
// email when none is marked primary.
func (s *Service) fetchVerifiedEmail(ctx context.Context, accessToken string) (string, error) {
	var emails []apiEmail
	if err := s.get(ctx, "/user/emails", accessToken, &emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, nil
		}
	}
	return "", ErrNoVerifiedEmail
}

func (s *Service) get(ctx context.Context, path, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAPIFailure, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d from %s", ErrAPIFailure, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrAPIFailure, path, err)
	}
	return nil
}
