package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/trellogo/filter"
	"github.com/s0up4200/trellogo/trello"
)

var (
	whereExpr   string
	savedFilter string
	boardStatus string
	listStatus  string
	cardStatus  string
	labelLimit  int
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Inspect boards",
}

var boardListCmd = &cobra.Command{
	Use:     "list [member]",
	Short:   "List the boards of a member (default: you)",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runBoardList,
}

var boardGetCmd = &cobra.Command{
	Use:     "get <board-id>",
	Short:   "Show a board",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runBoardGet,
}

var boardListsCmd = &cobra.Command{
	Use:     "lists <board-id>",
	Short:   "Show the lists of a board",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runBoardLists,
}

var boardCardsCmd = &cobra.Command{
	Use:   "cards <board-id>",
	Short: "Show the cards of a board, optionally filtered",
	Long: `Show the cards of a board.

Cards can be narrowed down with a saved filter from the configuration
(--filter) and/or an ad-hoc expression (--where), for example:

  trellogo board cards 5f1a2b --where 'hasLabel("bug") and overdue()'`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runBoardCards,
}

var boardLabelsCmd = &cobra.Command{
	Use:     "labels <board-id>",
	Short:   "Show the labels of a board",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runBoardLabels,
}

var boardDumpCmd = &cobra.Command{
	Use:     "dump <board-id>",
	Short:   "Fetch a board with its lists, cards, labels, members and checklists",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runBoardDump,
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.AddCommand(boardListCmd, boardGetCmd, boardListsCmd, boardCardsCmd, boardLabelsCmd, boardDumpCmd)

	boardListCmd.Flags().StringVar(&boardStatus, "status", "open", "board filter: open, closed, starred or all")
	boardListsCmd.Flags().StringVar(&listStatus, "status", "open", "list filter: open, closed or all")
	boardCardsCmd.Flags().StringVar(&cardStatus, "status", "open", "card filter: open, closed, visible or all")
	boardCardsCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression")
	boardCardsCmd.Flags().StringVarP(&savedFilter, "filter", "f", "", "use a saved filter from config")
	boardLabelsCmd.Flags().IntVar(&labelLimit, "limit", 0, "maximum number of labels (0 for the API default)")
}

func runBoardList(cmd *cobra.Command, args []string) error {
	member := "me"
	if len(args) == 1 {
		member = args[0]
	}

	boards, err := client.GetBoardsByMember(cmd.Context(), member, boardStatus)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, boards, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tNAME\tCLOSED\tURL")
		for _, b := range boards {
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", b.ID, b.Name, b.Closed, b.ShortURL)
		}
	})
}

func runBoardGet(cmd *cobra.Command, args []string) error {
	board, err := client.GetBoard(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if board == nil {
		return fmt.Errorf("board %s not found", args[0])
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, board, func(w io.Writer) {
		fmt.Fprintf(w, "ID:\t%s\n", board.ID)
		fmt.Fprintf(w, "Name:\t%s\n", board.Name)
		fmt.Fprintf(w, "Closed:\t%t\n", board.Closed)
		fmt.Fprintf(w, "URL:\t%s\n", orDash(board.URL))
		fmt.Fprintf(w, "Description:\t%s\n", orDash(board.Desc))
	})
}

func runBoardLists(cmd *cobra.Command, args []string) error {
	lists, err := client.GetListsByBoard(cmd.Context(), args[0], listStatus)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, lists, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tNAME\tCLOSED")
		for _, l := range lists {
			fmt.Fprintf(w, "%s\t%s\t%t\n", l.ID, l.Name, l.Closed)
		}
	})
}

func runBoardCards(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	boardID := args[0]

	var (
		cards   []trello.Card
		lists   []trello.List
		members []trello.Member
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cards, err = client.GetCardsByBoard(gctx, boardID, nil, cardStatus)
		return err
	})
	g.Go(func() (err error) {
		lists, err = client.GetListsByBoard(gctx, boardID)
		return err
	})
	g.Go(func() (err error) {
		members, err = client.GetMembersByBoard(gctx, boardID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	infos, err := selectCards(ctx, filter.Enrich(cards, lists, members))
	if err != nil {
		return err
	}

	logger.Debug().Int("total", len(cards)).Int("matched", len(infos)).Msg("Filtered cards")

	return render(cmd.OutOrStdout(), cfg.Output.Format, infos, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tNAME\tLIST\tLABELS\tMEMBERS\tDUE")
		for _, c := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				c.ID, c.Name, orDash(c.ListName), joinOrDash(c.LabelNames),
				joinOrDash(c.MemberUsernames), formatDate(c.Due))
		}
	})
}

// selectCards applies the saved filter, then the ad-hoc expression
func selectCards(ctx context.Context, cards []filter.CardInfo) ([]filter.CardInfo, error) {
	var err error
	if savedFilter != "" {
		cards, err = filters.Apply(ctx, savedFilter, cards)
		if err != nil {
			return nil, err
		}
	}
	if whereExpr != "" {
		cards, err = filters.Where(ctx, whereExpr, cards)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
	}
	return cards, nil
}

func runBoardLabels(cmd *cobra.Command, args []string) error {
	labels, err := client.GetLabelsByBoard(cmd.Context(), args[0], labelLimit)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, labels, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tNAME\tCOLOR")
		for _, l := range labels {
			fmt.Fprintf(w, "%s\t%s\t%s\n", l.ID, orDash(l.Name), orDash(string(l.Color)))
		}
	})
}

// boardDump is everything "board dump" collects about one board
type boardDump struct {
	Board      *trello.Board      `json:"board"`
	Lists      []trello.List      `json:"lists"`
	Cards      []trello.Card      `json:"cards"`
	Labels     []trello.Label     `json:"labels"`
	Members    []trello.Member    `json:"members"`
	Checklists []trello.Checklist `json:"checklists"`
}

func runBoardDump(cmd *cobra.Command, args []string) error {
	boardID := args[0]
	var dump boardDump

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)

	g.Go(func() (err error) {
		dump.Board, err = client.GetBoard(ctx, boardID)
		return err
	})
	g.Go(func() (err error) {
		dump.Lists, err = client.GetListsByBoard(ctx, boardID, "all")
		return err
	})
	g.Go(func() (err error) {
		dump.Cards, err = client.GetCardsByBoard(ctx, boardID, nil, "all")
		return err
	})
	g.Go(func() (err error) {
		dump.Labels, err = client.GetLabelsByBoard(ctx, boardID, 0)
		return err
	})
	g.Go(func() (err error) {
		dump.Members, err = client.GetMembersByBoard(ctx, boardID)
		return err
	})
	g.Go(func() (err error) {
		dump.Checklists, err = client.GetChecklistsByBoard(ctx, boardID)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to dump board %s: %w", boardID, err)
	}
	if dump.Board == nil {
		return fmt.Errorf("board %s not found", boardID)
	}

	format := cfg.Output.Format
	if format == "table" {
		format = "json"
	}
	return render(cmd.OutOrStdout(), format, dump, nil)
}
