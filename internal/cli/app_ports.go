package cli

import "github.com/alexanderramin/grove/internal/app"

func (a *App) logSessionUseCase() app.LogSessionUseCase {
	if a.LogSession != nil {
		return a.LogSession
	}
	if a.Sessions == nil {
		return nil
	}
	return a.Sessions
}

func (a *App) dashboardUseCase() app.DashboardUseCase {
	if a.GetDashboard != nil {
		return a.GetDashboard
	}
	if a.Dashboard == nil {
		return nil
	}
	return a.Dashboard
}

func (a *App) seedUseCase() app.SeedUseCase {
	if a.InitDefaults != nil {
		return a.InitDefaults
	}
	if a.Seed == nil {
		return nil
	}
	return a.Seed
}

func (a *App) exportUseCase() app.ExportUseCase {
	if a.ExportData != nil {
		return a.ExportData
	}
	if a.Transfer == nil {
		return nil
	}
	return a.Transfer
}

func (a *App) importUseCase() app.ImportUseCase {
	if a.ImportData != nil {
		return a.ImportData
	}
	if a.Transfer == nil {
		return nil
	}
	return a.Transfer
}
