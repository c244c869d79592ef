package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var webhookDescription string

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Manage the webhooks of your token",
}

var webhookListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List webhooks",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runWebhookList,
}

var webhookCreateCmd = &cobra.Command{
	Use:   "create <model-id> [callback-url]",
	Short: "Watch a board, list, card or member",
	Long: `Register a webhook for a model. The callback URL defaults to
webhook.callback_url from the configuration. Trello probes the URL with a
HEAD request before accepting it, so "trellogo serve" must be reachable.`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: initializeApp,
	RunE:    runWebhookCreate,
}

var webhookDeleteCmd = &cobra.Command{
	Use:     "delete <webhook-id>",
	Short:   "Delete a webhook",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runWebhookDelete,
}

func init() {
	rootCmd.AddCommand(webhookCmd)
	webhookCmd.AddCommand(webhookListCmd, webhookCreateCmd, webhookDeleteCmd)

	webhookCreateCmd.Flags().StringVar(&webhookDescription, "description", "trellogo", "webhook description")
}

func runWebhookList(cmd *cobra.Command, args []string) error {
	hooks, err := client.GetWebhooks(cmd.Context())
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, hooks, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tMODEL\tACTIVE\tCALLBACK\tDESCRIPTION")
		for _, h := range hooks {
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n", h.ID, h.IDModel, h.Active, h.CallbackURL, orDash(h.Description))
		}
	})
}

func runWebhookCreate(cmd *cobra.Command, args []string) error {
	callbackURL := cfg.Webhook.CallbackURL
	if len(args) == 2 {
		callbackURL = args[1]
	}
	if callbackURL == "" {
		return fmt.Errorf("no callback URL given and webhook.callback_url is not set")
	}

	hook, err := client.CreateWebhook(cmd.Context(), webhookDescription, callbackURL, args[0])
	if err != nil {
		return err
	}
	if hook == nil {
		return fmt.Errorf("webhook for %s was not created", args[0])
	}

	logger.Info().Str("id", hook.ID).Str("model", hook.IDModel).Str("callback", hook.CallbackURL).Msg("Created webhook")

	return render(cmd.OutOrStdout(), cfg.Output.Format, hook, func(w io.Writer) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", hook.ID, hook.IDModel, hook.CallbackURL)
	})
}

func runWebhookDelete(cmd *cobra.Command, args []string) error {
	if err := client.DeleteWebhook(cmd.Context(), args[0]); err != nil {
		return err
	}

	logger.Info().Str("id", args[0]).Msg("Deleted webhook")
	return nil
}
