package social

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

func TestDiscordMemberCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/invites/abc123", r.URL.Path)
		fmt.Fprint(w, `{"approximate_member_count": 4321}`)
	}))
	defer server.Close()

	discord := NewDiscord(config.DiscordConfig{InviteURL: server.URL + "/api/invites/%s"})

	count, err := discord.MemberCount(context.Background(), "https://discord.gg/abc123")
	require.NoError(t, err)
	assert.Equal(t, 4321, count)
}

func TestDiscordMemberCountMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": "abc123"}`)
	}))
	defer server.Close()

	discord := NewDiscord(config.DiscordConfig{InviteURL: server.URL + "/api/invites/%s"})

	_, err := discord.MemberCount(context.Background(), "https://discord.gg/abc123")
	require.Error(t, err)

	var apiErr *errors.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestInviteCode(t *testing.T) {
	assert.Equal(t, "abc123", inviteCode("https://discord.gg/abc123"))
	assert.Equal(t, "abc123", inviteCode("abc123"))
	assert.Equal(t, "", inviteCode("https://discord.gg/"))
}

func TestTwitterProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "acme", r.URL.Query().Get("screen_name"))
		fmt.Fprint(w, `{"description": "We build things", "followers_count": 99}`)
	}))
	defer server.Close()

	twitter, err := NewTwitter(config.TwitterConfig{
		UserShowURL: server.URL + "/1.1/users/show.json?screen_name=%s",
		BearerToken: "token-123",
	})
	require.NoError(t, err)

	profile, err := twitter.Profile(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "We build things", profile.Description)
	assert.Equal(t, 99, profile.FollowersCount)
}

func TestTwitterRequiresToken(t *testing.T) {
	_, err := NewTwitter(config.TwitterConfig{UserShowURL: "https://example.com/%s"})
	require.ErrorIs(t, err, errors.ErrAPIKeyRequired)
}

func TestTwitterEmptyHandle(t *testing.T) {
	twitter, err := NewTwitter(config.TwitterConfig{
		UserShowURL: "https://example.com/%s",
		BearerToken: "token",
	})
	require.NoError(t, err)

	_, err = twitter.Profile(context.Background(), "")
	require.Error(t, err)
}
