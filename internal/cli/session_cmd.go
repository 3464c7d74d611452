package cli

import (
	"fmt"

	"github.com/alexanderramin/grove/internal/cli/formatter"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/stats"
	"github.com/spf13/cobra"
)

func newSessionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"plant"},
		Short:   "Log and review focus sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(a),
		newSessionListCmd(a),
		newSessionRemoveCmd(a),
	)

	return cmd
}

func newSessionLogCmd(a *App) *cobra.Command {
	var categoryRef, title, status, date string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a focus session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			draft := sessionDraft{Title: title, Status: status, Date: date}
			if minutes != 0 {
				draft.Minutes = fmt.Sprint(minutes)
			}
			if categoryRef != "" {
				c, err := resolveCategory(ctx, a, categoryRef)
				if err != nil {
					return err
				}
				draft.CategoryID = c.ID
			}

			if draft.CategoryID == "" || draft.Title == "" || draft.Minutes == "" {
				if !a.isInteractive() {
					return fmt.Errorf("--category, --title and --minutes are required")
				}
				categories, err := a.Categories.List(ctx)
				if err != nil {
					return err
				}
				if len(categories) == 0 && draft.CategoryID == "" {
					return fmt.Errorf("no categories yet; add one with: grove category add --name NAME")
				}
				if draft.Status == "" {
					draft.Status = string(domain.SessionDone)
				}
				if err := sessionLogForm(categories, &draft).Run(); err != nil {
					return err
				}
			}

			s, err := draft.toSession()
			if err != nil {
				return err
			}
			if s.DateISO == "" {
				s.DateISO = domain.FormatDate(a.now())
			}

			logSession := a.logSessionUseCase()
			if logSession == nil {
				return fmt.Errorf("log-session use case is not configured")
			}
			if err := logSession.Log(ctx, s); err != nil {
				return err
			}

			idx, err := categoryIndex(ctx, a)
			if err != nil {
				return err
			}
			c, ok := idx[s.CategoryID]
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionLogged(s, c, ok))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryRef, "category", "", "Category name or ID")
	cmd.Flags().StringVar(&title, "title", "", "What you focused on")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes focused")
	cmd.Flags().StringVar(&status, "status", "", "Outcome: done or failed (default done)")
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today)")
	return cmd
}

func newSessionListCmd(a *App) *cobra.Command {
	var categoryRef, since string
	status := newChoiceValue(string(domain.SessionDone), string(domain.SessionFailed))
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filter := stats.SessionFilter{}
			if categoryRef != "" {
				c, err := resolveCategory(ctx, a, categoryRef)
				if err != nil {
					return err
				}
				filter.CategoryID = c.ID
			}
			if status.value != "" {
				filter.Status = domain.SessionStatus(status.value)
			}
			if since != "" {
				if _, err := domain.ParseDate(since); err != nil {
					return fmt.Errorf("--since: %w", err)
				}
				filter.Since = since
			}

			sessions, err := a.Sessions.List(ctx, filter)
			if err != nil {
				return err
			}
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[:limit]
			}
			idx, err := categoryIndex(ctx, a)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionList(sessions, idx, domain.Today(a.now())))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryRef, "category", "", "Only sessions in this category")
	cmd.Flags().Var(status, "status", "Only done or failed sessions")
	cmd.Flags().StringVar(&since, "since", "", "Only sessions dated on or after this day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many sessions")
	return cmd
}

func newSessionRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove SESSION",
		Aliases: []string{"rm"},
		Short:   "Remove a session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveSessionID(ctx, a, args[0])
			if err != nil {
				return err
			}
			if err := a.Sessions.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
