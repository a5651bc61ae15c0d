package urlutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Scheme is the only scheme prefix the parser accepts.
	Scheme = "http://"

	// DefaultPort is used when the authority carries no ":".
	DefaultPort = "80"
)

var (
	// ErrUnsupportedScheme is returned by Parse when the raw string does not
	// contain "http://".
	ErrUnsupportedScheme = errors.New("Only Http schema is supported") //nolint:staticcheck // message is part of the public contract

	// ErrInvalidPort is wrapped by PortNumber for non-numeric or out of range ports.
	ErrInvalidPort = errors.New("invalid port")
)

// URL holds a raw URL string and, after a successful Parse, its components.
type URL struct {
	raw        string
	host       string
	port       string
	path       string
	searchpart string
	parsed     bool
}

// New creates an unparsed URL. No validation happens until Parse is called.
func New(raw string) *URL {
	return &URL{raw: raw}
}

// Parse decomposes a raw string in one step. It is the pure equivalent of
// New(raw).Parse().
func Parse(raw string) (URL, error) {
	return New(raw).Parse()
}

// Parse validates the scheme and extracts host, port, path and searchpart.
//
// On failure the receiver is left untouched and the zero URL is returned with
// ErrUnsupportedScheme. On success all four fields are written together and a
// copy of the receiver is returned. Calling Parse again yields the same result.
//
// Parse is not safe for concurrent use on the same *URL.
func (u *URL) Parse() (URL, error) {
	// Containment, not prefix: "ftp://x/http://y" passes this check and is
	// then decomposed without stripping anything.
	if !strings.Contains(u.raw, Scheme) {
		return URL{}, ErrUnsupportedScheme
	}

	// Every repeated leading "http://" is stripped.
	rest := u.raw
	for strings.HasPrefix(rest, Scheme) {
		rest = rest[len(Scheme):]
	}
	authority, tail, hasTail := strings.Cut(rest, "/")

	host, port, hasPort := strings.Cut(authority, ":")
	if !hasPort {
		port = DefaultPort
	}

	var path, searchpart string
	if hasTail {
		path, searchpart, _ = strings.Cut(tail, "?")
	}

	u.host = host
	u.port = port
	u.path = path
	u.searchpart = searchpart
	u.parsed = true

	return *u, nil
}

// Raw returns the original input string.
func (u URL) Raw() string { return u.raw }

// Host returns the host token, or "" before a successful Parse.
func (u URL) Host() string { return u.host }

// Port returns the port as text, or "" before a successful Parse.
func (u URL) Port() string { return u.port }

// Path returns the path without its leading "/", or "" before a successful Parse.
func (u URL) Path() string { return u.path }

// Searchpart returns the text after the first "?", or "" before a successful Parse.
func (u URL) Searchpart() string { return u.searchpart }

// Parsed reports whether a successful Parse populated the components. It
// tells a legitimately empty field apart from one that was never set.
func (u URL) Parsed() bool { return u.parsed }

// PortNumber returns the port as an integer in the range 0-65535.
// Parse stores the port as opaque text; callers that need a dialable port
// number use this to reject garbage.
func (u URL) PortNumber() (int, error) {
	n, err := strconv.Atoi(u.port)
	if err != nil || n < 0 || n > 65535 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, u.port)
	}
	return n, nil
}

// NormalizeScheme prepares address-bar input for Parse. Surrounding whitespace
// is trimmed and "http://" is prepended when the input has no "://" at all.
// Input that already names a scheme, supported or not, is returned unchanged.
//
// Example:
//
//	urlutil.NormalizeScheme("example.com:8080")  // "http://example.com:8080"
//	urlutil.NormalizeScheme("https://example.com") // unchanged, Parse rejects it
func NormalizeScheme(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, "://") {
		return raw
	}
	return Scheme + raw
}
