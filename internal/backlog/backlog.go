// Package backlog loads the desired-state backlog document: a JSON file
// describing epics, each containing an ordered list of issue specs.
package backlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	apperrors "scopesync.dev/scopesync/internal/errors"
)

// DefaultPath is the backlog document the original workflow commits at the repo root
const DefaultPath = "intentive_complete_backlog.json"

// IssueSpec describes one desired tracked item. The title is the
// identity used for matching against remote issues (byte-equal only).
type IssueSpec struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

// Epic is a named grouping of related issue specs
type Epic struct {
	Issues []IssueSpec `json:"issues"`
}

// Document is the parsed backlog. It is immutable after Load.
type Document struct {
	Epics map[string]Epic

	// epicOrder preserves the declaration order of epic keys in the
	// source document, so run logs walk issues in the author's order.
	epicOrder []string
}

// UnmarshalJSON decodes the document and records epic declaration order
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Epics json.RawMessage `json:"epics"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Epics = make(map[string]Epic)
	d.epicOrder = nil

	// An absent or null epics key is malformed, not an empty backlog:
	// loading it as empty would put every open issue in the close set.
	// An empty backlog must be spelled {"epics": {}}.
	if len(raw.Epics) == 0 || bytes.Equal(raw.Epics, []byte("null")) {
		return fmt.Errorf("missing epics object")
	}

	if err := json.Unmarshal(raw.Epics, &d.Epics); err != nil {
		return err
	}

	order, err := objectKeyOrder(raw.Epics)
	if err != nil {
		return err
	}
	d.epicOrder = order

	return nil
}

// objectKeyOrder returns the top-level keys of a JSON object in document order
func objectKeyOrder(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("epics must be a JSON object")
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in epics object", keyTok)
		}
		keys = append(keys, key)

		// Skip the epic value
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}

	return keys, nil
}

// Load reads and parses the backlog document at path.
// A missing or malformed file is fatal to the run: no partial backlog
// is usable, since the desired-state set must be complete before any
// diff is computed.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewBacklogLoadError(path, fmt.Errorf("%w: %v", apperrors.ErrBacklogNotFound, err))
		}
		return nil, apperrors.NewBacklogLoadError(path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewBacklogLoadError(path, fmt.Errorf("%w: %v", apperrors.ErrBacklogMalformed, err))
	}

	return &doc, nil
}

// EpicKeys returns the epic keys in declaration order
func (d *Document) EpicKeys() []string {
	keys := make([]string, len(d.epicOrder))
	copy(keys, d.epicOrder)
	return keys
}

// SpecsInOrder returns every issue spec across all epics in declaration
// order. Duplicate titles keep only the first declaration, so a title
// shared across epics yields at most one create call.
func (d *Document) SpecsInOrder() []IssueSpec {
	seen := make(map[string]bool)
	var specs []IssueSpec

	for _, key := range d.epicOrder {
		for _, spec := range d.Epics[key].Issues {
			if seen[spec.Title] {
				continue
			}
			seen[spec.Title] = true
			specs = append(specs, spec)
		}
	}

	return specs
}

// DesiredTitles returns the deduplicated set of desired issue titles in
// declaration order
func (d *Document) DesiredTitles() []string {
	specs := d.SpecsInOrder()
	titles := make([]string, 0, len(specs))
	for _, spec := range specs {
		titles = append(titles, spec.Title)
	}
	return titles
}
