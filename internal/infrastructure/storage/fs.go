package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"svw.info/advent/internal/domain"
)

// ErrNoInput is returned when neither the input directory nor the embedded
// inputs hold a file for the requested day.
var ErrNoInput = errors.New("storage: no input for day")

var inputName = regexp.MustCompile(`^day_(\d{2})\.txt$`)

// FS reads day_NN.txt inputs from dir, falling back to the embedded set.
type FS struct {
	dir      string
	embedded fs.FS
}

func NewFS(dir string, embedded fs.FS) *FS { return &FS{dir: dir, embedded: embedded} }

func fileFor(d domain.Day) string {
	return fmt.Sprintf("day_%02d.txt", int(d))
}

func (s *FS) Load(ctx context.Context, d domain.Day) (string, error) {
	name := fileFor(d)
	if s.dir != "" {
		b, err := os.ReadFile(filepath.Join(s.dir, name))
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	if s.embedded != nil {
		b, err := fs.ReadFile(s.embedded, name)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w %d", ErrNoInput, int(d))
}

// List returns every day with an input in either location, ascending.
func (s *FS) List(ctx context.Context) ([]domain.Day, error) {
	seen := map[domain.Day]bool{}
	collect := func(ents []fs.DirEntry) {
		for _, e := range ents {
			if e.IsDir() {
				continue
			}
			m := inputName.FindStringSubmatch(e.Name())
			if m == nil {
				continue
			}
			n, _ := strconv.Atoi(m[1])
			seen[domain.Day(n)] = true
		}
	}
	if s.dir != "" {
		ents, err := os.ReadDir(s.dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		collect(ents)
	}
	if s.embedded != nil {
		ents, err := fs.ReadDir(s.embedded, ".")
		if err != nil {
			return nil, err
		}
		collect(ents)
	}
	out := make([]domain.Day, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	slices.Sort(out)
	return out, nil
}
