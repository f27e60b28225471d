package tenant

import (
	"context"
	"errors"
	"net"
	"net/url"
	"slices"
	"strings"

	"jcw/jcw/utils/logging"
	"jcw/jcw/utils/types"

	"go.uber.org/zap"
)

var (
	DefaultSuffixes = []string{".lvh.me", ".localhost"}
	DefaultReserved = []string{"www"}
)

type State string

const (
	StateWelcome          State = "welcome"
	StateInvalidSubdomain State = "invalid_subdomain"
	StateNotFound         State = "not_found"
	StateLoadFailed       State = "load_failed"
)

// Message is the user facing error text for s; empty for StateWelcome.
func (s State) Message() string {
	switch s {
	case StateInvalidSubdomain:
		return "Invalid subdomain"
	case StateNotFound:
		return "Tenant not found"
	case StateLoadFailed:
		return "Failed to load tenant"
	}
	return ""
}

type Result struct {
	State  State
	Key    string
	Tenant *types.Tenant
}

// Lookup is the subset of Client the resolver needs.
type Lookup interface {
	GetBySlug(ctx context.Context, slug string) (types.Tenant, error)
}

type Resolver struct {
	lookup   Lookup
	suffixes []string
	reserved []string
}

// NewResolver falls back to DefaultSuffixes / DefaultReserved for empty lists.
func NewResolver(lookup Lookup, suffixes, reserved []string) *Resolver {
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes
	}
	if len(reserved) == 0 {
		reserved = DefaultReserved
	}
	return &Resolver{lookup: lookup, suffixes: suffixes, reserved: reserved}
}

// stripPort drops a trailing :port, leaving bare IPv6 literals alone.
func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

// IsSubdomainHost reports whether host is served under one of suffixes.
func IsSubdomainHost(host string, suffixes []string) bool {
	host = stripPort(host)
	for _, s := range suffixes {
		if strings.Contains(host, s) {
			return true
		}
	}
	return false
}

// ExtractKey returns the first host label on a development subdomain host,
// otherwise the "tenant" query parameter.
func ExtractKey(host string, query url.Values, suffixes []string) string {
	host = stripPort(host)
	if IsSubdomainHost(host, suffixes) {
		label, _, _ := strings.Cut(host, ".")
		return label
	}
	return query.Get("tenant")
}

func (r *Resolver) Key(host string, query url.Values) string {
	return ExtractKey(host, query, r.suffixes)
}

// Resolve looks the tenant up on every call.
func (r *Resolver) Resolve(ctx context.Context, host string, query url.Values) Result {
	key := r.Key(host, query)
	if key == "" || slices.Contains(r.reserved, key) {
		return Result{State: StateInvalidSubdomain, Key: key}
	}

	t, err := r.lookup.GetBySlug(ctx, key)
	switch {
	case err == nil:
		return Result{State: StateWelcome, Key: key, Tenant: &t}
	case errors.Is(err, ErrNotFound):
		return Result{State: StateNotFound, Key: key}
	default:
		logging.ErrorLogger.Error("tenant fetch error", zap.String("slug", key), zap.Error(err))
		return Result{State: StateLoadFailed, Key: key}
	}
}
