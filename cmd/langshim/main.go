// Command langshim runs language detection over files from the shell
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"langshim/internal/core/version"

	_ "langshim/internal/core/engine/cld2"
	_ "langshim/internal/core/engine/script"
)

// statusError carries a non-OK detection status to the exit code
type statusError struct{ msg string }

func (e *statusError) Error() string { return e.msg }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "langshim",
		Short:         "Identify the languages of text",
		Long:          "langshim runs the compiled-in detection engine and prints the flattened result",
		Version:       version.Info().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("engine", "", "engine name (default: most capable compiled in; env LANGSHIM_ENGINE)")
	root.AddCommand(newDetectCmd(), newLanguagesCmd(), newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var se *statusError
		if !errors.As(err, &se) {
			fmt.Fprintln(os.Stderr, "langshim:", err)
		}
		os.Exit(1)
	}
}
