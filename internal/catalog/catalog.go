// Package catalog holds the read-only question bank.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
)

// FormatVersion is the catalog document format written by this build.
// Documents with the same major version are accepted.
const FormatVersion = "v1.0.0"

//go:embed data/quizzes.json
var defaultCatalog []byte

// Catalog resolves quizzes by id. Implementations are read-only and safe
// for concurrent use.
type Catalog interface {
	// FindByID returns the quiz with the given id or *QuizNotFoundError.
	FindByID(id string) (Quiz, error)

	// All returns every quiz in catalog order.
	All() []Quiz
}

// Document is the on-disk catalog representation.
type Document struct {
	Format  string `json:"format"`
	Quizzes []Quiz `json:"quizzes"`
}

// Static is an in-memory Catalog built once and never mutated.
type Static struct {
	quizzes []Quiz
	byID    map[string]int
}

var _ Catalog = (*Static)(nil)

// New builds a Static catalog from quizzes, validating each one.
func New(quizzes ...Quiz) (*Static, error) {
	s := &Static{
		quizzes: make([]Quiz, 0, len(quizzes)),
		byID:    make(map[string]int, len(quizzes)),
	}
	for _, q := range quizzes {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate quiz id %q", q.ID)
		}
		s.byID[q.ID] = len(s.quizzes)
		s.quizzes = append(s.quizzes, q)
	}
	return s, nil
}

// Default returns the catalog bundled with the binary.
func Default() (*Static, error) {
	return Parse("embedded", defaultCatalog)
}

// LoadFile reads and validates a catalog document from path.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(path, data)
}

// Load reads a catalog document from r.
func Load(source string, r io.Reader) (*Static, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(source, buf.Bytes())
}

// Parse validates raw against the catalog schema and builds a Static catalog.
func Parse(source string, raw []byte) (*Static, error) {
	if err := ValidateDocument(raw); err != nil {
		return nil, &FormatError{Source: source, Err: err}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &FormatError{Source: source, Err: err}
	}
	if err := checkFormat(doc.Format); err != nil {
		return nil, &FormatError{Source: source, Err: err}
	}

	s, err := New(doc.Quizzes...)
	if err != nil {
		return nil, &FormatError{Source: source, Err: err}
	}
	return s, nil
}

// Encode renders quizzes as a catalog document in the current format.
func Encode(quizzes []Quiz) ([]byte, error) {
	return json.MarshalIndent(Document{Format: FormatVersion, Quizzes: quizzes}, "", "  ")
}

func checkFormat(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("format %q is not a semantic version", v)
	}
	if semver.Major(v) != semver.Major(FormatVersion) {
		return fmt.Errorf("format %s is not compatible with %s", v, FormatVersion)
	}
	return nil
}

// FindByID implements Catalog.
func (s *Static) FindByID(id string) (Quiz, error) {
	i, ok := s.byID[id]
	if !ok {
		return Quiz{}, &QuizNotFoundError{ID: id}
	}
	return s.quizzes[i], nil
}

// All implements Catalog. The returned slice must not be modified.
func (s *Static) All() []Quiz {
	return s.quizzes
}

// ByLevel returns the quizzes at the given level, in catalog order.
func (s *Static) ByLevel(level Level) []Quiz {
	var out []Quiz
	for _, q := range s.quizzes {
		if q.Level == level {
			out = append(out, q)
		}
	}
	return out
}
