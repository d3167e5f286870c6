package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/daoatlas/daoatlas/pkg/errors"
	"github.com/daoatlas/daoatlas/pkg/logging"
)

// DecodeResponse decodes a JSON response into the target structure.
// Non-200 statuses become APIErrors carrying the response body.
func DecodeResponse(source string, resp *http.Response, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Str("source", source).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", source+" response", err)
	}

	return nil
}
