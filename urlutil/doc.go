// Package urlutil decomposes http URLs into the pieces a user agent needs to
// issue a request: host, port, path and search part.
//
// The parser is deliberately small. It understands a single scheme (http://),
// does no percent-decoding, no relative resolution and no IPv6 bracket
// handling. Everything after the scheme check is accepted verbatim: an empty
// host or a non-numeric port is stored as-is.
//
// # Usage
//
// Construct a URL from the raw string and parse it:
//
//	import "github.com/jongio/browser-core/urlutil"
//
//	u, err := urlutil.New("http://example.com:8888/index.html?a=123").Parse()
//	if err != nil {
//		return fmt.Errorf("cannot navigate: %w", err)
//	}
//	fmt.Println(u.Host(), u.Port(), u.Path(), u.Searchpart())
//	// example.com 8888 index.html a=123
//
// Or use the pure form, which never mutates shared state:
//
//	u, err := urlutil.Parse(raw)
//
// Use NormalizeScheme on text typed into an address bar before parsing:
//
//	u, err := urlutil.Parse(urlutil.NormalizeScheme("example.com/path"))
//
// # Extraction Rules
//
//   - The raw string must contain "http://" somewhere. Leading "http://"
//     prefixes are stripped, repeated ones included, before the remaining
//     rules run. An "http://" elsewhere in the string is left in place.
//   - The authority runs up to the first "/". Host is the authority up to the
//     first ":", port is what follows it. Without ":" the port is "80".
//   - Path is everything after the first "/" up to the first "?".
//   - Searchpart is everything after that first "?".
//
// The only error Parse returns is ErrUnsupportedScheme.
package urlutil
