package cli

import (
	"time"

	"github.com/alexanderramin/grove/internal/app"
	"github.com/alexanderramin/grove/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Categories service.CategoryService
	Sessions   service.SessionService
	Dashboard  service.DashboardService
	Seed       service.SeedService
	Transfer   service.TransferService

	// Optional use-case overrides. Nil falls back to the services above.
	LogSession   app.LogSessionUseCase
	GetDashboard app.DashboardUseCase
	InitDefaults app.SeedUseCase
	ExportData   app.ExportUseCase
	ImportData   app.ImportUseCase

	// Defaults seeds every dashboard request; flags override it.
	Defaults app.DashboardRequest
	// NoSeed skips first-run sample data, same as --no-seed.
	NoSeed bool

	IsInteractive func() bool
	Now           func() time.Time
}

// NewRootCmd creates the top-level "grove" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	var noSeed bool

	root := &cobra.Command{
		Use:           "grove",
		Short:         "Track focus sessions and watch your garden grow",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			seed := a.seedUseCase()
			if seed == nil {
				return nil
			}
			// Skipping the seed is remembered, so a later run without
			// --no-seed does not add samples next to the user's own data.
			if noSeed || a.NoSeed {
				return seed.MarkInitialized(cmd.Context())
			}
			_, err := seed.InitializeDefaults(cmd.Context())
			return err
		},
	}
	root.PersistentFlags().BoolVar(&noSeed, "no-seed", false, "Do not create sample data on first run")

	root.AddCommand(
		newCategoryCmd(a),
		newSessionCmd(a),
		newDashboardCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)

	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) isInteractive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// dashboardRequest starts from the configured defaults, filling any zero
// fields from the app package defaults.
func (a *App) dashboardRequest() app.DashboardRequest {
	req := app.NewDashboardRequest()
	if a.Defaults.MonthCount != 0 {
		req.MonthCount = a.Defaults.MonthCount
	}
	if a.Defaults.WindowDays != 0 {
		req.WindowDays = a.Defaults.WindowDays
	}
	now := a.now()
	req.Now = &now
	return req
}
