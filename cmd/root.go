package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/s0up4200/trellogo/config"
	"github.com/s0up4200/trellogo/filter"
	"github.com/s0up4200/trellogo/metrics"
	"github.com/s0up4200/trellogo/trello"
)

var (
	cfgFile      string
	outputFormat string
	cfg          *config.Config
	logger       zerolog.Logger
	client       *trello.Client
	filters      *filter.Manager
	registry     *prometheus.Registry
	apiMetrics   *metrics.Metrics
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trellogo",
	Short: "A command line client for the Trello REST API",
	Long: `trellogo talks to the Trello REST API with your API key and token.

It can inspect boards, lists and cards, filter cards with expressions,
create and move cards, manage webhooks and receive webhook callbacks.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml")
}

// initializeApp loads the configuration and builds the Trello client.
// Commands that talk to Trello use it as PreRunE.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}
	switch cfg.Output.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	logger = setupLogger(cfg.Logging)

	registry = prometheus.NewRegistry()
	apiMetrics = metrics.New(registry)

	client, err = newClient(cfg, logger, apiMetrics)
	if err != nil {
		return fmt.Errorf("failed to create Trello client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter); err != nil {
		return err
	}
	if len(cfg.Filter) > 0 {
		logger.Debug().Strs("filters", filters.ListFilters()).Msg("Loaded saved filters")
	}

	return nil
}

// newClient maps the configuration onto client options
func newClient(cfg *config.Config, logger zerolog.Logger, m *metrics.Metrics) (*trello.Client, error) {
	rps := cfg.Trello.RequestsPerSecond
	opts := []trello.Option{
		trello.WithToken(cfg.Trello.Token),
		trello.WithBaseURL(cfg.Trello.BaseURL),
		trello.WithTimeout(cfg.Trello.Timeout),
		trello.WithMaxRetries(cfg.Trello.MaxRetries),
		trello.WithRateLimit(rate.Limit(rps), max(1, int(math.Ceil(rps)))),
		trello.WithLogger(logger),
		trello.WithMetrics(m),
		trello.WithUserAgent("trellogo/" + appVersion),
	}

	if cfg.Proxy.Host != "" {
		opts = append(opts, trello.WithProxy(cfg.Proxy.Host, cfg.Proxy.Port, cfg.Proxy.User, cfg.Proxy.Password))
	}
	if cfg.Trello.StrictErrors {
		opts = append(opts, trello.WithStrictErrors())
	}

	return trello.NewClient(cfg.Trello.APIKey, opts...)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
