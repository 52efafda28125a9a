package source

import (
	"errors"
	"net/http"
	"strings"

	"github.com/example/storefinder/internal/ports/secondary"
)

// CacheScheme selects the local SQLite cache as the record source.
const CacheScheme = "sqlite:"

// ErrNoSource is returned when no location is given and no cache is wired.
var ErrNoSource = errors.New("no store data source configured")

// Resolver maps a location string to a RecordSource:
// http(s) URLs fetch over HTTP, "sqlite:" (or an empty location when a cache
// is wired) reads the local cache, anything else is a JSON file path.
type Resolver struct {
	client *http.Client
	cache  secondary.RecordSource
}

// NewResolver creates a Resolver. cache may be nil when no cache is available.
// A nil client, or one without a timeout, is replaced by a client bounded by
// DefaultHTTPTimeout so a stalled server cannot hang a load.
func NewResolver(client *http.Client, cache secondary.RecordSource) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	} else if client.Timeout == 0 {
		bounded := *client
		bounded.Timeout = DefaultHTTPTimeout
		client = &bounded
	}
	return &Resolver{client: client, cache: cache}
}

// Resolve returns the RecordSource for location.
func (r *Resolver) Resolve(location string) (secondary.RecordSource, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "" || location == CacheScheme:
		if r.cache == nil {
			return nil, ErrNoSource
		}
		return r.cache, nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, r.client), nil
	default:
		return NewFileSource(strings.TrimPrefix(location, "file://")), nil
	}
}

// Ensure Resolver implements the interface.
var _ secondary.SourceResolver = (*Resolver)(nil)
