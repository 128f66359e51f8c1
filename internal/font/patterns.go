package font

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// ReadPatterns reads glob patterns from r, one per line, in order.
// Blank lines and lines starting with '#' are skipped. This is the
// streaming form of the --name flag.
func ReadPatterns(r io.Reader) ([]string, error) {
	var patterns []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading patterns")
	}

	return patterns, nil
}
