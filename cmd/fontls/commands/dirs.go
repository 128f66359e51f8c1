package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	flserrors "github.com/fontkit/fontls/internal/errors"
	"github.com/fontkit/fontls/internal/fontdir"
)

var dirsJSON bool

func init() {
	dirsCmd.Flags().BoolVar(&dirsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(dirsCmd)
}

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Show the font directories searched per scope",
	Long: `Show the font directory fontls resolves for each installation scope on
this platform, and whether it exists on disk.

Examples:
  # Human-readable listing
  fontls dirs

  # Output as JSON
  fontls dirs --json`,
	RunE: runDirs,
}

// dirInfo describes one scope's resolved directory for JSON output.
type dirInfo struct {
	Scope  string `json:"scope"`
	Path   string `json:"path,omitempty"`
	Exists bool   `json:"exists"`
}

func runDirs(_ *cobra.Command, _ []string) error {
	return runDirsWithWriter(os.Stdout)
}

// runDirsWithWriter allows injecting a writer for testing.
func runDirsWithWriter(w io.Writer) error {
	platform, err := fontdir.Detect()
	if err != nil {
		return flserrors.NewUserError(err, "fontls supports Windows, Linux, and macOS")
	}

	infos := make([]dirInfo, 0, 2)
	for _, scope := range []fontdir.Scope{fontdir.CurrentUser, fontdir.AllUsers} {
		info := dirInfo{Scope: scope.String()}
		if dir, ok := fontdir.Dir(platform, scope); ok {
			info.Path = dir
			if st, err := os.Stat(dir); err == nil && st.IsDir() {
				info.Exists = true
			}
		}
		infos = append(infos, info)
	}

	if dirsJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(infos), "encoding output")
	}

	bold := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	missing := color.New(color.FgRed)

	bold.Fprintf(w, "Platform: %s\n", platform)
	for _, info := range infos {
		if info.Path == "" {
			fmt.Fprintf(w, "  %-12s %s\n", info.Scope, missing.Sprint("(no directory mapped)"))
			continue
		}
		marker := missing.Sprint("missing")
		if info.Exists {
			marker = ok.Sprint("ok")
		}
		fmt.Fprintf(w, "  %-12s %s  [%s]\n", info.Scope, info.Path, marker)
	}

	return nil
}
