package social

import (
	"context"
	"fmt"

	"github.com/daoatlas/daoatlas/internal/config"
	"github.com/daoatlas/daoatlas/internal/transport"
	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

// Twitter fetches public profile metadata for organization accounts.
type Twitter struct {
	cfg       config.TwitterConfig
	transport *transport.Client
}

// NewTwitter creates a twitter profile client. The bearer token is
// mandatory; the users/show endpoint rejects anonymous requests.
func NewTwitter(cfg config.TwitterConfig) (*Twitter, error) {
	if cfg.BearerToken == "" {
		return nil, fmt.Errorf("twitter: %w", errors.ErrAPIKeyRequired)
	}
	return &Twitter{
		cfg:       cfg,
		transport: transport.New(transport.WithBearerToken(cfg.BearerToken)),
	}, nil
}

// Profile fetches the bio and follower count for a twitter handle.
func (t *Twitter) Profile(ctx context.Context, handle string) (*daos.TwitterProfile, error) {
	if handle == "" {
		return nil, &errors.ValidationError{
			Field:   "twitter",
			Message: "empty handle",
		}
	}

	url := fmt.Sprintf(t.cfg.UserShowURL, handle)

	var profile daos.TwitterProfile
	if err := t.transport.GetJSON(ctx, "twitter", url, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
