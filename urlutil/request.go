package urlutil

import "encoding/json"

// Address returns "host:port", the address a transport dials.
func (u URL) Address() string {
	return u.host + ":" + u.port
}

// RequestTarget returns the origin-form target for an HTTP request line:
// "/" + path, followed by "?" + searchpart when a search part is present.
func (u URL) RequestTarget() string {
	if u.searchpart == "" {
		return "/" + u.path
	}
	return "/" + u.path + "?" + u.searchpart
}

// Locator joins all four components with their literal delimiters:
// host:port/path?searchpart. Defaults that Parse applied show up here, so the
// result is request-equivalent to Raw but not always byte-identical.
func (u URL) Locator() string {
	return u.host + ":" + u.port + "/" + u.path + "?" + u.searchpart
}

// String returns the raw input.
func (u URL) String() string {
	return u.raw
}

// urlJSON is the wire shape used by the CLI and the parse endpoint.
type urlJSON struct {
	Raw        string `json:"raw"`
	Host       string `json:"host"`
	Port       string `json:"port"`
	Path       string `json:"path"`
	Searchpart string `json:"searchpart"`
}

// MarshalJSON encodes the raw string and the four components.
func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(urlJSON{
		Raw:        u.raw,
		Host:       u.host,
		Port:       u.port,
		Path:       u.path,
		Searchpart: u.searchpart,
	})
}
