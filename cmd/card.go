package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/trellogo/trello"
)

var (
	cardListID  string
	cardName    string
	cardDesc    string
	cardDue     string
	cardLabels  []string
	noConfirm   bool
	commentOnly bool
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Inspect and change cards",
}

var cardGetCmd = &cobra.Command{
	Use:     "get <card-id>",
	Short:   "Show a card with its checklists",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCardGet,
}

var cardActionsCmd = &cobra.Command{
	Use:     "actions <card-id>",
	Short:   "Show the history of a card",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCardActions,
}

var cardCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a card",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runCardCreate,
}

var cardCommentCmd = &cobra.Command{
	Use:     "comment <card-id> <text>",
	Short:   "Comment on a card",
	Args:    cobra.MinimumNArgs(2),
	PreRunE: initializeApp,
	RunE:    runCardComment,
}

var cardMoveCmd = &cobra.Command{
	Use:     "move <card-id>",
	Short:   "Move a card to another list",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCardMove,
}

var cardArchiveCmd = &cobra.Command{
	Use:     "archive <card-id>",
	Short:   "Archive a card",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCardArchive,
}

var cardDeleteCmd = &cobra.Command{
	Use:     "delete <card-id>",
	Short:   "Delete a card permanently",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCardDelete,
}

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(cardGetCmd, cardActionsCmd, cardCreateCmd, cardCommentCmd, cardMoveCmd, cardArchiveCmd, cardDeleteCmd)

	cardActionsCmd.Flags().BoolVar(&commentOnly, "comments", false, "only show comments")

	cardCreateCmd.Flags().StringVar(&cardListID, "list", "", "id of the list to create the card in")
	cardCreateCmd.Flags().StringVar(&cardName, "name", "", "card name")
	cardCreateCmd.Flags().StringVar(&cardDesc, "desc", "", "card description")
	cardCreateCmd.Flags().StringVar(&cardDue, "due", "", "due date (RFC 3339 or YYYY-MM-DD)")
	cardCreateCmd.Flags().StringSliceVar(&cardLabels, "label", nil, "label id to add (repeatable)")
	_ = cardCreateCmd.MarkFlagRequired("list")
	_ = cardCreateCmd.MarkFlagRequired("name")

	cardMoveCmd.Flags().StringVar(&cardListID, "list", "", "id of the target list")
	_ = cardMoveCmd.MarkFlagRequired("list")

	cardDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func runCardGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	card, err := client.GetCard(ctx, args[0])
	if err != nil {
		return err
	}
	if card == nil {
		return fmt.Errorf("card %s not found", args[0])
	}

	checklists, err := client.GetChecklistsByCard(ctx, card.ID)
	if err != nil {
		return err
	}

	out := struct {
		*trello.Card
		Checklists []trello.Checklist `json:"checklists"`
	}{card, checklists}

	return render(cmd.OutOrStdout(), cfg.Output.Format, out, func(w io.Writer) {
		labels := make([]string, 0, len(card.Labels))
		for _, l := range card.Labels {
			labels = append(labels, orDash(l.Name))
		}

		fmt.Fprintf(w, "ID:\t%s\n", card.ID)
		fmt.Fprintf(w, "Name:\t%s\n", card.Name)
		fmt.Fprintf(w, "List:\t%s\n", card.IDList)
		fmt.Fprintf(w, "Labels:\t%s\n", joinOrDash(labels))
		fmt.Fprintf(w, "Due:\t%s\n", formatDate(card.Due))
		fmt.Fprintf(w, "Closed:\t%t\n", card.Closed)
		fmt.Fprintf(w, "URL:\t%s\n", orDash(card.ShortURL))
		fmt.Fprintf(w, "Comments:\t%d\n", card.Badges.Comments)
		for _, cl := range checklists {
			done := 0
			for _, item := range cl.CheckItems {
				if item.Complete() {
					done++
				}
			}
			fmt.Fprintf(w, "Checklist:\t%s (%d/%d)\n", cl.Name, done, len(cl.CheckItems))
		}
	})
}

func runCardActions(cmd *cobra.Command, args []string) error {
	var types []trello.ActionType
	if commentOnly {
		types = append(types, trello.ActionCommentCard)
	}

	actions, err := client.GetActionsByCard(cmd.Context(), args[0], types...)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, actions, func(w io.Writer) {
		fmt.Fprintln(w, "DATE\tTYPE\tMEMBER\tTEXT")
		for _, a := range actions {
			member := "-"
			if a.MemberCreator != nil {
				member = a.MemberCreator.Username
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", formatDate(a.Date), a.Type, member, orDash(a.Data.Text))
		}
	})
}

func runCardCreate(cmd *cobra.Command, args []string) error {
	params := trello.Arguments{}
	if cardDesc != "" {
		params["desc"] = cardDesc
	}
	if cardDue != "" {
		due, err := parseDue(cardDue)
		if err != nil {
			return err
		}
		params["due"] = due.UTC().Format(time.RFC3339)
	}
	if len(cardLabels) > 0 {
		for _, id := range cardLabels {
			if err := trello.ValidateObjectID(id); err != nil {
				return err
			}
		}
		params["idLabels"] = strings.Join(cardLabels, ",")
	}

	card, err := client.CreateCard(cmd.Context(), cardListID, cardName, params)
	if err != nil {
		return err
	}
	if card == nil {
		return fmt.Errorf("card was not created")
	}

	logger.Info().Str("id", card.ID).Str("name", card.Name).Msg("Created card")

	return render(cmd.OutOrStdout(), cfg.Output.Format, card, func(w io.Writer) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", card.ID, card.Name, orDash(card.ShortURL))
	})
}

// parseDue accepts a full timestamp or a plain date
func parseDue(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: use RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

func runCardComment(cmd *cobra.Command, args []string) error {
	text := strings.Join(args[1:], " ")

	action, err := client.AddCommentToCard(cmd.Context(), args[0], text)
	if err != nil {
		return err
	}
	if action == nil {
		return fmt.Errorf("comment was not added to card %s", args[0])
	}

	logger.Info().Str("card", args[0]).Str("action", action.ID).Msg("Added comment")
	return nil
}

func runCardMove(cmd *cobra.Command, args []string) error {
	if err := trello.ValidateObjectID(cardListID); err != nil {
		return err
	}

	return updateCard(cmd, args[0], trello.Arguments{"idList": cardListID}, "Moved card")
}

func runCardArchive(cmd *cobra.Command, args []string) error {
	return updateCard(cmd, args[0], trello.Arguments{"closed": "true"}, "Archived card")
}

func updateCard(cmd *cobra.Command, cardID string, params trello.Arguments, msg string) error {
	card, err := client.UpdateCard(cmd.Context(), cardID, params)
	if err != nil {
		return err
	}
	if card == nil {
		return fmt.Errorf("card %s was not updated", cardID)
	}

	logger.Info().Str("id", card.ID).Str("list", card.IDList).Bool("closed", card.Closed).Msg(msg)
	return nil
}

func runCardDelete(cmd *cobra.Command, args []string) error {
	if !noConfirm {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete card %s permanently? [y/N]: ", args[0])
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	if err := client.DeleteCard(cmd.Context(), args[0]); err != nil {
		return err
	}

	logger.Info().Str("id", args[0]).Msg("Deleted card")
	return nil
}
