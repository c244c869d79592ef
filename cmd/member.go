package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Inspect members",
}

var memberGetCmd = &cobra.Command{
	Use:     "get [username-or-id]",
	Aliases: []string{"me"},
	Short:   "Show a member (default: the owner of the token)",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runMemberGet,
}

var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test the API key and token",
	PreRunE: initializeApp,
	RunE:    runTest,
}

func init() {
	rootCmd.AddCommand(memberCmd, testCmd)
	memberCmd.AddCommand(memberGetCmd)
}

func runMemberGet(cmd *cobra.Command, args []string) error {
	who := "me"
	if len(args) == 1 {
		who = args[0]
	}

	member, err := client.GetMember(cmd.Context(), who)
	if err != nil {
		return err
	}
	if member == nil {
		return fmt.Errorf("member %s not found", who)
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, member, func(w io.Writer) {
		fmt.Fprintf(w, "ID:\t%s\n", member.ID)
		fmt.Fprintf(w, "Username:\t%s\n", member.Username)
		fmt.Fprintf(w, "Full name:\t%s\n", orDash(member.FullName))
		fmt.Fprintf(w, "URL:\t%s\n", orDash(member.URL))
	})
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to Trello at %s...\n", cfg.Trello.BaseURL)

	if err := client.TestConnection(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	if names := filters.ListFilters(); len(names) > 0 {
		fmt.Fprintf(out, "\nSaved filters:\n")
		for _, name := range names {
			f, _ := filters.GetFilter(name)
			fmt.Fprintf(out, "  • %s: %s\n", name, f.Expression())
		}
	}

	return nil
}
