package github

import "time"

// Config holds the GitHub OAuth app credentials. The default scope is the
// minimum needed to read the member's email address.
type Config struct {
	ClientID     string        `env:"GITHUB_OAUTH_CLIENT_ID,required"`
	ClientSecret string        `env:"GITHUB_OAUTH_CLIENT_SECRET,required"`
	RedirectURL  string        `env:"GITHUB_OAUTH_REDIRECT_URL,required"`
	Scopes       []string      `env:"GITHUB_OAUTH_SCOPES" envSeparator:"," envDefault:"user:email"`
	StateTTL     time.Duration `env:"GITHUB_OAUTH_STATE_TTL" envDefault:"10m"`
}
