package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/thankyou/pkg/deps"
	pkgio "github.com/matzehuels/thankyou/pkg/io"
	"github.com/matzehuels/thankyou/pkg/observability"
)

// thank runs one attribution pass over the manifest found in dir: every
// dependency is looked up in order, the list is printed to Stdout and then
// written to OutputFile. Nothing is written if the manifest is missing or
// invalid.
func (c *CLI) thank(ctx context.Context, dir string) error {
	logger := c.Logger.With("run", newRunID())
	ctx = withLogger(ctx, logger)

	observability.SetHTTPHooks(logHooks{})
	defer observability.Reset()

	lang, path, err := deps.Locate(dir, languages...)
	if err != nil {
		return err
	}
	parser := lang.NewManifest()
	logger.Debug("manifest", "path", path, "type", parser.Type(), "kind", lang.Kind, "registry", lang.Registry)

	entries, err := parser.Parse(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printWarning(c.Stderr, "No dependencies declared in %s", path)
	} else {
		logger.Infof("Looking up %d dependencies on %s", len(entries), lang.Registry)
	}

	prog := newProgress(logger)
	records, err := deps.Collect(ctx, entries, lang.NewFetcher(c.HTTPClient), deps.Options{
		Logger: func(msg string, args ...any) { logger.Warnf(msg, args...) },
		Progress: func(current, total int, name string) {
			logger.Infof("(%d/%d) %s", current, total, name)
		},
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Fetched %d of %d packages", len(records), len(entries)))

	if err := pkgio.WriteJSON(records, c.Stdout); err != nil {
		return err
	}
	if err := pkgio.ExportJSON(records, c.OutputFile); err != nil {
		return err
	}

	printSuccess(c.Stderr, "Thanked %d packages", len(records))
	if skipped := len(entries) - len(records); skipped > 0 {
		printDetail(c.Stderr, "%d skipped", skipped)
	}
	printFile(c.Stderr, c.OutputFile)
	return nil
}
