// Package social validates community links by resolving them against the
// discord and twitter APIs and extracting membership counts and profile
// metadata.
package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/internal/transport"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

// Discord resolves invite links to live guild membership counts.
type Discord struct {
	cfg       config.DiscordConfig
	transport *transport.Client
}

// NewDiscord creates a discord invite-resolution client.
func NewDiscord(cfg config.DiscordConfig) *Discord {
	return &Discord{
		cfg:       cfg,
		transport: transport.New(),
	}
}

type inviteResponse struct {
	ApproximateMemberCount *int `json:"approximate_member_count"`
}

// MemberCount resolves a discord invite URL to the guild's approximate
// member count. The invite code is the last path segment of the URL; a
// resolvable invite without a member count means the link is dead or the
// guild is hidden, which callers treat as an invalid link.
func (d *Discord) MemberCount(ctx context.Context, inviteURL string) (int, error) {
	code := inviteCode(inviteURL)
	if code == "" {
		return 0, &errors.ValidationError{
			Field:   "discord",
			Value:   inviteURL,
			Message: "no invite code in URL",
		}
	}

	url := fmt.Sprintf(d.cfg.InviteURL, code)

	var result inviteResponse
	if err := d.transport.GetJSON(ctx, "discord", url, &result); err != nil {
		return 0, err
	}

	if result.ApproximateMemberCount == nil {
		return 0, &errors.APIError{
			Source:   "discord",
			Endpoint: url,
			Message:  "invite has no member count: " + code,
		}
	}
	return *result.ApproximateMemberCount, nil
}

// inviteCode extracts the invite code from an invite URL.
func inviteCode(url string) string {
	trimmed := strings.TrimSpace(url)
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
