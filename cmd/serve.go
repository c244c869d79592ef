package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/s0up4200/trellogo/filter"
	"github.com/s0up4200/trellogo/trello"
	"github.com/s0up4200/trellogo/webhook"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Receive Trello webhook callbacks",
	Long: `Start an HTTP server for Trello webhook callbacks on /webhook and
Prometheus metrics on /metrics.

Each received action is logged. Card actions are also matched against the
saved filters, and matches are logged with the filter name.`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default webhook.listen)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Webhook.Listen
	if listenAddr != "" {
		addr = listenAddr
	}

	opts := []webhook.Option{
		webhook.WithMetrics(apiMetrics),
		webhook.WithLogger(logger.With().Str("component", "webhook").Logger()),
	}
	if cfg.Webhook.Secret != "" {
		if cfg.Webhook.CallbackURL == "" {
			logger.Warn().Msg("webhook.secret is set without webhook.callback_url; signatures cannot match")
		}
		opts = append(opts, webhook.WithSecret(cfg.Webhook.Secret, cfg.Webhook.CallbackURL))
	} else {
		logger.Warn().Msg("webhook.secret is not set; callbacks are not verified")
	}

	handler := webhook.NewHandler(handleAction, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return webhook.Serve(ctx, addr, webhook.NewRouter(handler, registry), logger)
}

// handleAction logs the action and runs the saved filters on the card it
// touched.
func handleAction(ctx context.Context, p *webhook.Payload) error {
	action := p.Action
	event := logger.Info().Str("type", string(action.Type)).Str("id", action.ID)
	if action.MemberCreator != nil {
		event = event.Str("member", action.MemberCreator.Username)
	}
	if action.Data.Board != nil {
		event = event.Str("board", action.Data.Board.Name)
	}
	if action.Data.Card != nil {
		event = event.Str("card", action.Data.Card.Name)
	}
	event.Msg("Trello action")

	names := filters.ListFilters()
	if action.Data.Card == nil || len(names) == 0 {
		return nil
	}

	card, err := client.GetCard(ctx, action.Data.Card.ID)
	if err != nil || card == nil {
		// Deleted cards and cards the token cannot see are not an error for Trello.
		logger.Debug().Err(err).Str("card", action.Data.Card.ID).Msg("Card not available for filtering")
		return nil
	}

	var lists []trello.List
	if list, err := client.GetListByCard(ctx, card.ID); err == nil && list != nil {
		lists = append(lists, *list)
	}
	members, err := client.GetMembersByCard(ctx, card.ID)
	if err != nil {
		logger.Debug().Err(err).Str("card", card.ID).Msg("Card members not available for filtering")
	}
	info := filter.Enrich([]trello.Card{*card}, lists, members)[0]

	for _, name := range names {
		matched, err := filters.Apply(ctx, name, []filter.CardInfo{info})
		if err != nil {
			return err
		}
		if len(matched) > 0 {
			logger.Info().Str("filter", name).Str("card", card.Name).Str("url", card.ShortURL).Msg("Card matches filter")
		}
	}

	return nil
}
