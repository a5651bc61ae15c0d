// Package batch parses lists of URLs stored in YAML files.
//
// A batch file looks like:
//
//	normalize: false
//	urls:
//	  - http://example.com
//	  - http://example.com:8888/index.html?a=123
//	  - raw: example.com/typed-in-address-bar
//	    normalize: true
//
// Entries are either a bare string or a mapping with raw and normalize keys.
// A top-level normalize applies to every entry.
package batch

import (
	"fmt"
	"os"

	"github.com/jongio/browser-core/logutil"
	"github.com/jongio/browser-core/urlutil"
	"gopkg.in/yaml.v3"
)

// Entry is one URL in a batch file.
type Entry struct {
	Raw       string `yaml:"raw"`
	Normalize bool   `yaml:"normalize,omitempty"`
}

// UnmarshalYAML accepts either a scalar or a mapping.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Raw = node.Value
		e.Normalize = false
		return nil
	}

	type plain Entry
	var p plain
	if err := node.Decode(&p); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*e = Entry(p)
	return nil
}

// File is a decoded batch file.
type File struct {
	Normalize bool    `yaml:"normalize,omitempty"`
	URLs      []Entry `yaml:"urls"`
}

// Result is the outcome of parsing one entry.
type Result struct {
	Input string       `json:"input"`
	URL   *urlutil.URL `json:"url,omitempty"`
	Error string       `json:"error,omitempty"`
}

// OK reports whether the entry parsed.
func (r Result) OK() bool {
	return r.Error == ""
}

// Summary counts results.
type Summary struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// Load reads and decodes a batch file.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is supplied by the CLI user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Decode(data)
}

// Decode decodes batch file content.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	return &f, nil
}

// Run parses every entry in order. Rejected entries are reported in their
// Result and never stop the run.
func Run(f *File) []Result {
	log := logutil.NewLogger("batch").WithOperation("run")
	results := make([]Result, 0, len(f.URLs))

	for i, entry := range f.URLs {
		input := entry.Raw
		if f.Normalize || entry.Normalize {
			input = urlutil.NormalizeScheme(input)
		}

		u, err := urlutil.Parse(input)
		if err != nil {
			log.Warn("rejected", "index", i, "input", input, "error", err)
			results = append(results, Result{Input: input, Error: err.Error()})
			continue
		}

		log.Debug("parsed", "index", i, "host", u.Host(), "port", u.Port())
		results = append(results, Result{Input: input, URL: &u})
	}

	return results
}

// Summarize counts accepted and rejected results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Accepted++
		} else {
			s.Rejected++
		}
	}
	return s
}
