package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"autopredict-web/internal/adapters/secondary/predictorapi"
	"autopredict-web/internal/config"
	ports "autopredict-web/internal/core/ports/output"
)

type rootOptions struct {
	apiURL  string
	verbose bool
}

// NewRootCmd builds the autopredict command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "autopredict",
		Short:         "autopredict is a CLI for the used-car price predictor.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	defaultURL := "http://localhost:8000"
	if cfg, err := config.Load(); err == nil {
		defaultURL = cfg.Predictor.URL
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", defaultURL, "Base URL of the predictor API.")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log outbound requests.")

	cmd.AddCommand(
		newOptionsCmd(opts),
		newPredictCmd(opts),
		newStatsCmd(opts),
	)
	return cmd
}

func ExecuteContext(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *rootOptions) client() ports.PredictorAPI {
	return predictorapi.NewPredictorClient(&config.PredictorConfig{
		URL: strings.TrimRight(o.apiURL, "/"),
	})
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	return t
}
