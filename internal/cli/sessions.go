package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Session commands",
	}
	cmd.AddCommand(newSessionsListCmd(app))
	cmd.AddCommand(newSessionsShowCmd(app))
	cmd.AddCommand(newSessionsPurgeCmd(app))
	cmd.AddCommand(newSessionsDeleteCmd(app))
	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List live sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := openStore(cmd.Context(), app, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer store.Close()

			infos, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing sessions: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLISTS\tUPDATED\tEXPIRES")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
					info.ID,
					info.Lists,
					info.UpdatedAt.UTC().Format(time.RFC3339),
					info.ExpiresAt.UTC().Format(time.RFC3339),
				)
			}
			return tw.Flush()
		},
	}
}

func newSessionsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Print every list of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd.Context(), app, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer store.Close()

			c, err := store.Load(cmd.Context(), args[0])
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("session %s not found", args[0])
			}
			if err != nil {
				return fmt.Errorf("loading session %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			lists := todolist.SortLists(c.Lists())
			if len(lists) == 0 {
				fmt.Fprintln(out, "(no lists)")
				return nil
			}
			for i, l := range lists {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, l.String())
			}
			return nil
		},
	}
}

func newSessionsPurgeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, logger, err := openStore(cmd.Context(), app, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.DeleteExpired(cmd.Context())
			if err != nil {
				return fmt.Errorf("purging sessions: %w", err)
			}
			logger.InfoContext(cmd.Context(), "expired sessions purged", slog.Int("count", n))
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired %s\n", n, sessionNoun(n))
			return nil
		},
	}
}

func newSessionsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, logger, err := openStore(cmd.Context(), app, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("deleting session %s: %w", args[0], err)
			}
			logger.DebugContext(cmd.Context(), "session deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "deleted session %s\n", args[0])
			return nil
		},
	}
}

func sessionNoun(n int) string {
	if n == 1 {
		return "session"
	}
	return "sessions"
}
