// Command emotectl renders, validates and manages emote log messages from the
// command line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"emotebot/internal/application"
	"emotebot/internal/infrastructure/emotestore"
	"emotebot/internal/infrastructure/xivapi"
	"emotebot/internal/ports/output"
)

type rootOptions struct {
	dataFile  string
	source    string
	xivapiKey string
	xivapiURL string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "emotectl",
		Short:        "Render and check emote log messages",
		SilenceUsage: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dataFile, "data", "data/emotes.yaml", "emote data file")
	flags.StringVar(&opts.source, "source", "file", "emote source: file or xivapi")
	flags.StringVar(&opts.xivapiKey, "xivapi-key", os.Getenv("XIVAPI_KEY"), "xivapi private key")
	flags.StringVar(&opts.xivapiURL, "xivapi-url", xivapi.DefaultBaseURL, "xivapi base URL")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug records to stderr")

	cmd.AddCommand(
		newRenderCmd(opts),
		newPerspectivesCmd(opts),
		newValidateCmd(opts),
		newListCmd(opts),
		newFetchCmd(opts),
		newMigrateCmd(),
		newSeedCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	if !o.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (o *rootOptions) loader(logger *slog.Logger) (output.EmoteLoader, error) {
	switch o.source {
	case "file":
		return &emotestore.FileLoader{Path: o.dataFile}, nil
	case "xivapi":
		return xivapi.NewClient(
			xivapi.WithBaseURL(o.xivapiURL),
			xivapi.WithPrivateKey(o.xivapiKey),
			xivapi.WithLogger(logger),
		), nil
	default:
		return nil, fmt.Errorf("unknown source %q (want file or xivapi)", o.source)
	}
}

// service loads the emotes into memory and returns a service over them.
func (o *rootOptions) service(ctx context.Context, cmd *cobra.Command) (*application.EmoteService, error) {
	logger := o.logger(cmd.ErrOrStderr())
	loader, err := o.loader(logger)
	if err != nil {
		return nil, err
	}
	emotes, err := loader.LoadEmotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load emotes: %w", err)
	}
	return application.NewEmoteService(emotestore.NewRepository(emotes...), logger), nil
}
