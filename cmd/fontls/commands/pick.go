package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	flserrors "github.com/fontkit/fontls/internal/errors"
	"github.com/fontkit/fontls/internal/font"
	"github.com/fontkit/fontls/internal/fontdir"
	"github.com/fontkit/fontls/internal/logging"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a font and print its path",
	Long: `Fuzzy-search across the fonts of both scopes and print the path of the
selected font file. Useful in shell pipelines:

  cp "$(fontls pick)" ./assets/`,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	lister, err := font.NewWithLogger(logger)
	if err != nil {
		return flserrors.NewUserError(err, "fontls supports Windows, Linux, and macOS")
	}

	records := lister.List(font.Options{
		Scopes: []fontdir.Scope{fontdir.CurrentUser, fontdir.AllUsers},
	})
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No fonts found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", records[i].Name, records[i].Scope)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			r := records[i]
			return fmt.Sprintf("Name:  %s\nScope: %s\nPath:  %s", r.Name, r.Scope, r.Path)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	fmt.Println(records[idx].Path)
	return nil
}
