// Package cli implements the thankyou command-line interface.
package cli

import (
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/thankyou/pkg/buildinfo"
	"github.com/matzehuels/thankyou/pkg/deps"
	"github.com/matzehuels/thankyou/pkg/deps/javascript"
	"github.com/matzehuels/thankyou/pkg/deps/rust"
	"github.com/matzehuels/thankyou/pkg/integrations"
	pkgio "github.com/matzehuels/thankyou/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "thankyou"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

const rootLong = `Thankyou reads the package.json or Cargo.toml in a directory, looks up every
direct dependency on npm or crates.io, and writes an attribution list with
each package's description, homepage and license to ` + pkgio.DefaultOutputFile + `.

The list is also printed to stdout. Progress goes to stderr.`

const rootExample = `  thankyou
  thankyou ./path/to/project
  thankyou -v ../my-crate`

// languages is the list of supported package ecosystems in lookup priority
// order: package.json wins over Cargo.toml when both are present.
var languages = []*deps.Language{
	javascript.Language,
	rust.Language,
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// HTTPClient is shared by every registry request of a run.
	HTTPClient *http.Client

	// Stdout receives the attribution list; Stderr receives status lines.
	Stdout io.Writer
	Stderr io.Writer

	// OutputFile is the path the attribution list is written to.
	OutputFile string
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:     newLogger(w, level),
		HTTPClient: integrations.NewHTTPClient(),
		Stdout:     os.Stdout,
		Stderr:     w,
		OutputFile: pkgio.DefaultOutputFile,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName + " [directory]",
		Short:         "Thankyou lists the open source packages your project depends on",
		Long:          rootLong,
		Example:       rootExample,
		Args:          cobra.MaximumNArgs(1),
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.thank(cmd.Context(), dir)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root
}
