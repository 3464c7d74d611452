package cli

import (
	"fmt"

	"github.com/alexanderramin/grove/internal/cli/formatter"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/stats"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *App) *cobra.Command {
	var months, window int
	var today string
	var interactive bool

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"forest"},
		Short:   "Show category health and the monthly focus trend",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := a.dashboardRequest()
			if cmd.Flags().Changed("months") {
				if months < 0 {
					return fmt.Errorf("--months must be 0 or more")
				}
				req.MonthCount = months
			}
			if cmd.Flags().Changed("window") {
				if window < 0 {
					return fmt.Errorf("--window must be 0 or more")
				}
				req.WindowDays = window
			}
			if today != "" {
				d, err := domain.ParseDate(today)
				if err != nil {
					return fmt.Errorf("--today: %w", err)
				}
				req.Now = &d
			}

			dash := a.dashboardUseCase()
			if dash == nil {
				return fmt.Errorf("dashboard use case is not configured")
			}
			resp, err := dash.GetDashboard(cmd.Context(), req)
			if err != nil {
				return err
			}

			if interactive {
				if !a.isInteractive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				_, err := tea.NewProgram(newDashboardModel(resp), tea.WithAltScreen()).Run()
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", stats.DefaultMonthCount, "Number of months in the trend (0 hides it)")
	cmd.Flags().IntVar(&window, "window", stats.TrailingWindowDays, "Days before today counted toward category health (0 is today only)")
	cmd.Flags().StringVar(&today, "today", "", "Compute as of this date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse sessions in a full-screen view")
	return cmd
}
