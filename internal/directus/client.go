package directus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/commonshub/signup/internal/form"
)

// Member mirrors the members collection schema. Optional fields are sent
// as empty strings so every item carries the full shape.
type Member struct {
	ID              string `json:"id,omitempty"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	ExperienceLevel int    `json:"experience_level"`
	ProjectInterest string `json:"project_interest"`
	ProjectDetails  string `json:"project_details"`
	GithubUsername  string `json:"github_username"`
	LinkedinURL     string `json:"linkedin_url"`
	DiscordUsername string `json:"discord_username"`
}

// Session is the token pair returned by Directus /auth/login.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	// Expires is the access token lifetime in milliseconds.
	Expires int64 `json:"expires"`
}

// Client is a thin REST client for the Directus instance backing the
// community. All item operations authenticate with the static token;
// Login authenticates with the member's own credentials.
type Client struct {
	baseURL    string
	token      string
	collection string
	httpClient *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: BaseURL must be a valid URL", ErrInvalidConfig)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: Token is required", ErrInvalidConfig)
	}
	if cfg.Collection == "" {
		return nil, fmt.Errorf("%w: Collection is required", ErrInvalidConfig)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		collection: cfg.Collection,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// CreateMember stores a validated signup as a new item and returns its ID.
// Returns ErrDuplicate when the collection's unique constraint on email
// rejects the record.
func (c *Client) CreateMember(ctx context.Context, req form.SignupRequest) (string, error) {
	member := Member{
		Email:           req.Email,
		Name:            req.Name,
		ExperienceLevel: req.ExperienceLevel,
		ProjectInterest: req.ProjectInterest,
		ProjectDetails:  req.ProjectDetails,
		GithubUsername:  req.GithubUsername,
		LinkedinURL:     req.LinkedinURL,
		DiscordUsername: req.DiscordUsername,
	}

	var resp struct {
		Data Member `json:"data"`
	}
	err := c.do(ctx, http.MethodPost, "/items/"+c.collection, c.token, member, &resp)
	if err != nil {
		return "", err
	}
	return resp.Data.ID, nil
}

// MemberExistsByEmail reports whether a member with the given email is
// already registered. The email is expected pre-sanitized (lowercased).
func (c *Client) MemberExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := url.Values{
		"filter[email][_eq]": {email},
		"fields":             {"id"},
		"limit":              {"1"},
	}

	var resp struct {
		Data []Member `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/items/"+c.collection+"?"+query.Encode(), c.token, nil, &resp)
	if err != nil {
		return false, err
	}
	return len(resp.Data) > 0, nil
}

// Login authenticates a member against Directus and returns the session
// token pair. Returns ErrInvalidCredentials when Directus rejects the
// email/password combination.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	body := map[string]string{"email": email, "password": password}

	var resp struct {
		Data Session `json:"data"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp)
	if err != nil {
		return Session{}, err
	}
	return resp.Data, nil
}

// errorResponse is Directus's error envelope.
type errorResponse struct {
	Errors []struct {
		Message    string `json:"message"`
		Extensions struct {
			Code string `json:"code"`
		} `json:"extensions"`
	} `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("directus: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("directus: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("directus: decode response: %w", err)
		}
		return nil
	}

	return c.mapError(resp)
}

// mapError turns a non-2xx Directus response into a sentinel error. The
// response body is read fully so the connection can be reused.
func (c *Client) mapError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var envelope errorResponse
	code := ""
	if json.Unmarshal(raw, &envelope) == nil && len(envelope.Errors) > 0 {
		code = envelope.Errors[0].Extensions.Code
	}

	switch {
	case code == "RECORD_NOT_UNIQUE":
		return ErrDuplicate
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidCredentials
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d code %q", ErrUnexpectedStatus, resp.StatusCode, code)
	}
}
