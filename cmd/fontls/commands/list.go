package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/fontkit/fontls/internal/config"
	flserrors "github.com/fontkit/fontls/internal/errors"
	"github.com/fontkit/fontls/internal/font"
	"github.com/fontkit/fontls/internal/fontdir"
	"github.com/fontkit/fontls/internal/logging"
)

var (
	listNames   []string
	listScopes  []string
	listFile    string
	listFormat string
)

func init() {
	listCmd.Flags().StringSliceVarP(&listNames, "name", "n", nil,
		"glob pattern(s) to match font file names (default \"*\")")
	listCmd.Flags().StringSliceVarP(&listScopes, "scope", "s", nil,
		"scope(s) to search: user, system (default \"user\")")
	listCmd.Flags().StringVarP(&listFile, "file", "f", "",
		"read patterns one per line from a file, '-' for stdin")
	listCmd.Flags().StringVar(&listFormat, "format", "",
		"output format: table, json, yaml, toml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed fonts",
	Long: `List installed fonts, grouped by installation scope.

By default only the current user's font directory is searched. Use the
--scope flag to search the system-wide directory as well, and --name to
filter by glob pattern (matched case-insensitively against the file name
including its extension).

Examples:
  # List all of the current user's fonts
  fontls list

  # Fonts matching a pattern, across both scopes
  fontls list -n 'Arial*' -s user -s system

  # Read patterns from stdin
  printf 'DejaVu*\nNoto*\n' | fontls list -f -

  # Output as JSON
  fontls list --format json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(cmd, os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(cmd *cobra.Command, w io.Writer) error {
	logger := logging.FromContext(cmd.Context())
	conf := loadedConfig()

	names := listNames
	if len(names) == 0 {
		names = conf.DefaultPatterns
	}
	if listFile != "" {
		streamed, err := readPatternFile(cmd, listFile)
		if err != nil {
			return err
		}
		// Explicit -n patterns come first, streamed ones after, in order.
		if len(listNames) == 0 {
			names = streamed
		} else {
			names = append(append([]string{}, listNames...), streamed...)
		}
	}

	scopes, err := resolveScopes(conf)
	if err != nil {
		return err
	}

	format := listFormat
	if format == "" {
		format = conf.Format
	}

	lister, err := font.NewWithLogger(logger)
	if err != nil {
		return flserrors.NewUserError(err, "fontls supports Windows, Linux, and macOS")
	}

	records := lister.List(font.Options{
		Names:  names,
		Scopes: scopes,
	})

	switch format {
	case "", "table":
		return outputListTabular(w, records)
	default:
		return encodeRecords(w, format, records)
	}
}

// readPatternFile reads glob patterns from path, or stdin when path is "-".
func readPatternFile(cmd *cobra.Command, path string) ([]string, error) {
	if path == "-" {
		return font.ReadPatterns(cmd.InOrStdin())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, flserrors.NewSystemError(
			errors.Wrap(err, "opening pattern file"),
			"check the --file path")
	}
	defer f.Close()

	return font.ReadPatterns(f)
}

// resolveScopes parses the --scope flag, falling back to configured defaults.
func resolveScopes(conf *config.Config) ([]fontdir.Scope, error) {
	if len(listScopes) == 0 {
		return conf.Scopes()
	}

	scopes := make([]fontdir.Scope, 0, len(listScopes))
	for _, s := range listScopes {
		scope, err := fontdir.ParseScope(s)
		if err != nil {
			return nil, flserrors.NewUserError(err,
				fmt.Sprintf("valid scopes: %v", fontdir.ScopeNames()))
		}
		scopes = append(scopes, scope)
	}
	return scopes, nil
}
