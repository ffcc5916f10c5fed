// Package textfile stores documents as plain newline-terminated text files in
// a single directory.
package textfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/core/logging"
)

// DefaultMaxListed caps List results when no limit is configured.
const DefaultMaxListed = 50

var _ editor.Storage = (*Store)(nil)

// Store implements editor.Storage on a directory of text files.
type Store struct {
	root      string
	maxListed int
	log       zerolog.Logger
}

// New creates a store rooted at dir. maxListed caps List results; values
// below 1 use DefaultMaxListed.
func New(dir string, maxListed int) *Store {
	if maxListed < 1 {
		maxListed = DefaultMaxListed
	}
	return &Store{
		root:      dir,
		maxListed: maxListed,
		log:       logging.Component("textfile"),
	}
}

// Root returns the directory documents are stored in.
func (s *Store) Root() string { return s.root }

// Path returns the file path for name after validating it.
func (s *Store) Path(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.root, name), nil
}

// Save writes rows 0 through the highest non-empty row, one per line. The
// file is replaced atomically.
func (s *Store) Save(ctx context.Context, name string, doc *document.Document) error {
	ctx = logging.WithOperation(logging.WithDocument(ctx, name), "save")

	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", editor.ErrUnavailable, s.root, err)
	}

	tmp, err := os.CreateTemp(s.root, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", editor.ErrUnavailable, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := bufio.NewWriter(tmp)
	_, werr := w.WriteString(doc.Text())
	if werr == nil {
		werr = w.Flush()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("%w: write %s: %w", editor.ErrUnavailable, name, werr)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", editor.ErrUnavailable, name, err)
	}

	s.log.Debug().Ctx(ctx).Int("lines", doc.HighestNonEmptyRow()+1).Msg("wrote document")
	return nil
}

// Load reads name into a new document. Lines longer than the line capacity
// continue in the following rows, and anything past the last row is ignored.
func (s *Store) Load(ctx context.Context, name string) (*document.Document, error) {
	ctx = logging.WithOperation(logging.WithDocument(ctx, name), "load")

	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", editor.ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: read %s: %w", editor.ErrUnavailable, name, err)
	}

	lines, truncated := Decode(data)
	if truncated {
		s.log.Warn().Ctx(ctx).Int("max_lines", document.MaxLines).Msg("document longer than editor, tail ignored")
	}
	s.log.Debug().Ctx(ctx).Int("lines", len(lines)).Msg("read document")

	return document.FromLines(lines), nil
}

// List returns documents whose name matches the glob pattern, sorted by name
// and capped at the configured limit. A missing directory lists nothing.
func (s *Store) List(ctx context.Context, pattern string) ([]editor.Entry, error) {
	ctx = logging.WithOperation(ctx, "list")

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	dirents, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []editor.Entry{}, nil
		}
		return nil, fmt.Errorf("%w: list %s: %w", editor.ErrUnavailable, s.root, err)
	}

	entries := make([]editor.Entry, 0, min(len(dirents), s.maxListed))
	for _, de := range dirents {
		if !de.Type().IsRegular() {
			continue
		}
		if ok, _ := doublestar.Match(pattern, de.Name()); !ok {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, editor.Entry{Name: de.Name(), Size: info.Size()})
	}

	slices.SortFunc(entries, func(a, b editor.Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	if len(entries) > s.maxListed {
		s.log.Debug().Ctx(ctx).Int("found", len(entries)).Int("max", s.maxListed).Msg("listing capped")
		entries = entries[:s.maxListed]
	}
	return entries, nil
}

// Decode splits file content into editor rows. A trailing carriage return is
// dropped from each line, long lines are split into MaxLineLen chunks, and at
// most MaxLines rows are returned. truncated reports whether content was cut.
func Decode(data []byte) (lines []string, truncated bool) {
	data = bytes.TrimSuffix(data, []byte("\n"))
	if len(data) == 0 {
		return []string{}, false
	}

	for raw := range bytes.SplitSeq(data, []byte("\n")) {
		raw = bytes.TrimSuffix(raw, []byte("\r"))
		for {
			if len(lines) == document.MaxLines {
				return lines, true
			}
			n := min(len(raw), document.MaxLineLen)
			lines = append(lines, string(raw[:n]))
			raw = raw[n:]
			if len(raw) == 0 {
				break
			}
		}
	}
	return lines, false
}

func checkName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", editor.ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`) || name != filepath.Base(name):
		return fmt.Errorf("%w: %q contains a path separator", editor.ErrInvalidName, name)
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 32 || name[i] > 126 {
			return fmt.Errorf("%w: %q contains control characters", editor.ErrInvalidName, name)
		}
	}
	return nil
}
