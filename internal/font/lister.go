package font

import (
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fontkit/fontls/internal/fontdir"
)

// DirResolver resolves the font directory for a scope. The second return
// value is false when no directory is mapped for the scope.
type DirResolver func(fontdir.Scope) (string, bool)

// Options control a listing. Zero values select the defaults: all files
// in the current user's font directory.
type Options struct {
	// Names is the ordered list of glob patterns matched case-insensitively
	// against file names (including extension). Defaults to ["*"].
	Names []string

	// Scopes is the ordered list of scopes to search. Defaults to
	// [fontdir.CurrentUser].
	Scopes []fontdir.Scope
}

// Lister enumerates installed fonts for the host platform.
type Lister struct {
	logger *slog.Logger
	dir    DirResolver
}

// New creates a Lister for the host platform with a discard logger.
// It returns fontdir.ErrUnsupportedPlatform if the host OS is not
// recognized.
func New() (*Lister, error) {
	return NewWithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// NewWithLogger creates a Lister for the host platform with the given
// logger for step-by-step trace output.
func NewWithLogger(logger *slog.Logger) (*Lister, error) {
	platform, err := fontdir.Detect()
	if err != nil {
		return nil, err
	}
	logger.Debug("detected platform", "platform", platform)

	return &Lister{
		logger: logger,
		dir: func(s fontdir.Scope) (string, bool) {
			return fontdir.Dir(platform, s)
		},
	}, nil
}

// List enumerates font files per the given options.
//
// Records are ordered scopes-outer (input order), patterns-inner (input
// order), directory entries innermost (directory listing order). A file
// matching several patterns is reported once per pattern.
//
// A scope whose directory does not exist stops the listing immediately;
// records accumulated from earlier scopes are returned and any remaining
// scopes are not searched.
func (l *Lister) List(opts Options) []Record {
	names := opts.Names
	if len(names) == 0 {
		names = []string{"*"}
	}
	scopes := opts.Scopes
	if len(scopes) == 0 {
		scopes = []fontdir.Scope{fontdir.CurrentUser}
	}

	var records []Record

	for _, scope := range scopes {
		dir, ok := l.dir(scope)
		if !ok {
			l.logger.Debug("no font directory mapped", "scope", scope)
			continue
		}

		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			l.logger.Debug("font directory missing, stopping",
				"scope", scope,
				"dir", dir)
			return records
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			l.logger.Warn("failed to read font directory, stopping",
				"dir", dir,
				"error", err)
			return records
		}

		files := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			files = append(files, entry.Name())
		}
		l.logger.Debug("scanned font directory",
			"scope", scope,
			"dir", dir,
			"files", len(files))

		for _, pattern := range names {
			for _, file := range files {
				if !matchFold(pattern, file) {
					continue
				}
				records = append(records, Record{
					Name:  strings.TrimSuffix(file, filepath.Ext(file)),
					Path:  filepath.Join(dir, file),
					Scope: scope.String(),
				})
			}
		}
	}

	l.logger.Debug("listing complete", "records", len(records))
	return records
}

// matchFold reports whether name matches the glob pattern, ignoring case.
// Malformed patterns match nothing.
func matchFold(pattern, name string) bool {
	ok, err := path.Match(strings.ToLower(pattern), strings.ToLower(name))
	if err != nil {
		return false
	}
	return ok
}
