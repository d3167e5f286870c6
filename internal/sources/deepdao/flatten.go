package deepdao

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/spf13/cast"

	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

// social is one entry of the details payload's socials sequence.
type social struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// field is one (key, value) pair of the details document in document order.
// Order matters: canonicalization is first-occurrence-wins.
type field struct {
	key string
	raw json.RawMessage
}

// Flatten normalizes one organization's detail document and asset records
// into the canonical OrgInfo shape.
//
// Rules:
//   - detail keys are lower-cased and trimmed; the first occurrence of a
//     key wins, later duplicates are dropped
//   - the rankings field is dropped
//   - socials is exploded into one field per social type (first occurrence
//     per type); for twitter only the handle after the last "/" is kept
//   - assets tagged "treasury" contribute their address to treasury_address;
//     assets whose description mentions "snapshot" and that carry an address
//     contribute it to dd_eth_names; both comma-joined without dedup
func Flatten(orgID string, details json.RawMessage, assets []Asset) (*daos.OrgInfo, error) {
	fields, err := objectFields(details)
	if err != nil {
		return nil, errors.WrapParse("json", "organization details", err)
	}

	canonical := make(map[string]string, len(fields))
	for _, f := range fields {
		key := strings.ToLower(strings.TrimSpace(f.key))

		if key == "rankings" {
			continue // not relevant
		}

		if key == "socials" {
			var socials []social
			if err := json.Unmarshal(f.raw, &socials); err != nil {
				return nil, errors.WrapParse("json", "socials", err)
			}
			for _, s := range socials {
				socialKey := strings.ToLower(strings.TrimSpace(s.Type))
				if _, ok := canonical[socialKey]; ok {
					continue
				}
				value := s.URL
				if socialKey == "twitter" {
					value = lastPathSegment(value)
				}
				canonical[socialKey] = value
			}
			continue
		}

		if _, ok := canonical[key]; ok {
			continue
		}
		canonical[key] = scalarString(f.raw)
	}

	var treasury, ethNames []string
	for _, ast := range assets {
		if ast.Type == "treasury" && ast.Address != nil {
			treasury = append(treasury, *ast.Address)
		}
		if ast.Description != nil && ast.Address != nil {
			if strings.Contains(strings.ToLower(strings.TrimSpace(*ast.Description)), "snapshot") {
				ethNames = append(ethNames, *ast.Address)
			}
		}
	}

	return &daos.OrgInfo{
		OrganizationID:  orgID,
		Name:            canonical["name"],
		Description:     canonical["description"],
		Website:         canonical["website"],
		Twitter:         canonical["twitter"],
		Discord:         canonical["discord"],
		TreasuryAddress: strings.Join(treasury, ","),
		DDEthNames:      strings.Join(ethNames, ","),
	}, nil
}

// objectFields walks a JSON object with a token decoder, preserving the
// document's key order. encoding/json maps would randomize it and silently
// collapse duplicate keys, losing the first-wins rule.
func objectFields(raw json.RawMessage) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("details payload is not a JSON object")
	}

	var fields []field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("non-string key in details payload")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		fields = append(fields, field{key: key, raw: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

// scalarString renders a raw JSON value as its canonical string form.
// Composite values (arrays, objects) render as empty strings; the canonical
// schema only keeps scalars.
func scalarString(raw json.RawMessage) string {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	switch value.(type) {
	case []any, map[string]any:
		return ""
	}
	return cast.ToString(value)
}

// lastPathSegment returns the part of a URL after its last "/".
func lastPathSegment(url string) string {
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:]
	}
	return url
}
