// Package share encodes planter configurations into URLs that open the same
// plan elsewhere, and renders those URLs as QR codes.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// ErrMalformedLink is returned when a share link or payload cannot be decoded.
var ErrMalformedLink = errors.New("malformed share link")

// QueryParam is the URL query parameter carrying the encoded configuration.
const QueryParam = "config"

// Encode serializes cfg as base64 of its JSON form.
func Encode(cfg model.PlanterConfig) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses an encoded configuration and lays it over defaults: fields
// present in the payload win, everything else keeps the default value.
// The merge is shallow, so a payload box replaces the default box whole.
func Decode(s string, defaults model.PlanterConfig) (model.PlanterConfig, error) {
	data, err := decodeBase64(strings.TrimSpace(s))
	if err != nil {
		return defaults, fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return defaults, fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}

	cfg := defaults.Clone()
	if _, ok := fields["box"]; ok {
		cfg.Box = nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaults, fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}
	return cfg, nil
}

// decodeBase64 accepts standard and URL-safe alphabets, padded or not,
// since links get mangled by chat clients and mail readers.
func decodeBase64(s string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	var firstErr error
	for _, enc := range encodings {
		data, err := enc.DecodeString(s)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// Link builds a URL under base whose config query parameter carries cfg.
// Existing query parameters of base are kept.
func Link(base string, cfg model.PlanterConfig) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	encoded, err := Encode(cfg)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(QueryParam, encoded)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FromLink extracts and decodes the configuration carried by a share link.
func FromLink(link string, defaults model.PlanterConfig) (model.PlanterConfig, error) {
	u, err := url.Parse(link)
	if err != nil {
		return defaults, fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}
	encoded := u.Query().Get(QueryParam)
	if encoded == "" {
		return defaults, fmt.Errorf("%w: no %s parameter", ErrMalformedLink, QueryParam)
	}
	return Decode(encoded, defaults)
}
