package directus_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonshub/signup/internal/directus"
	"github.com/commonshub/signup/internal/form"
)

func testConfig(baseURL string) directus.Config {
	return directus.Config{
		BaseURL:    baseURL,
		Token:      "static-token",
		Collection: "members",
		Timeout:    5 * time.Second,
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*directus.Config)
	}{
		{"missing base url", func(c *directus.Config) { c.BaseURL = "" }},
		{"malformed base url", func(c *directus.Config) { c.BaseURL = "not a url" }},
		{"missing token", func(c *directus.Config) { c.Token = "" }},
		{"missing collection", func(c *directus.Config) { c.Collection = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("https://cms.example.com")
			tt.mutate(&cfg)

			_, err := directus.New(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, directus.ErrInvalidConfig)
		})
	}
}

func TestCreateMember(t *testing.T) {
	var gotAuth string
	var gotMember directus.Member

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/items/members", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMember))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "member-42", "email": gotMember.Email},
		})
	}))
	defer srv.Close()

	client, err := directus.New(testConfig(srv.URL))
	require.NoError(t, err)

	id, err := client.CreateMember(t.Context(), form.SignupRequest{
		Email:           "jane@example.com",
		ExperienceLevel: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "member-42", id)
	assert.Equal(t, "Bearer static-token", gotAuth)
	assert.Equal(t, "jane@example.com", gotMember.Email)
	assert.Equal(t, 3, gotMember.ExperienceLevel)
	assert.Equal(t, "", gotMember.Name, "optional fields are sent empty, not omitted")
}

func TestCreateMemberDuplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Field \"email\" has to be unique.","extensions":{"code":"RECORD_NOT_UNIQUE"}}]}`))
	}))
	defer srv.Close()

	client, err := directus.New(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.CreateMember(t.Context(), form.SignupRequest{Email: "jane@example.com"})
	assert.ErrorIs(t, err, directus.ErrDuplicate)
}

func TestCreateMemberServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := directus.New(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.CreateMember(t.Context(), form.SignupRequest{Email: "jane@example.com"})
	assert.ErrorIs(t, err, directus.ErrUnavailable)
}

func TestCreateMemberConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := directus.New(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.CreateMember(t.Context(), form.SignupRequest{Email: "jane@example.com"})
	assert.ErrorIs(t, err, directus.ErrUnavailable)
}

func TestMemberExistsByEmail(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"existing member", `{"data":[{"id":"member-1"}]}`, true},
		{"unknown email", `{"data":[]}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/items/members", r.URL.Path)
				assert.Equal(t, "jane@example.com", r.URL.Query().Get("filter[email][_eq]"))
				assert.Equal(t, "1", r.URL.Query().Get("limit"))
				_, _ = w.Write([]byte(tt.data))
			}))
			defer srv.Close()

			client, err := directus.New(testConfig(srv.URL))
			require.NoError(t, err)

			exists, err := client.MemberExistsByEmail(t.Context(), "jane@example.com")
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry the static token")

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "Sup3rSecret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":[{"message":"Invalid user credentials.","extensions":{"code":"INVALID_CREDENTIALS"}}]}`))
			return
		}

		_, _ = w.Write([]byte(`{"data":{"access_token":"acc","refresh_token":"ref","expires":900000}}`))
	}))
	defer srv.Close()

	client, err := directus.New(testConfig(srv.URL))
	require.NoError(t, err)

	session, err := client.Login(t.Context(), "jane@example.com", "Sup3rSecret")
	require.NoError(t, err)
	assert.Equal(t, "acc", session.AccessToken)
	assert.Equal(t, "ref", session.RefreshToken)
	assert.Equal(t, int64(900000), session.Expires)

	_, err = client.Login(t.Context(), "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, directus.ErrInvalidCredentials)
}
