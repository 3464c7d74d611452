package cli

import (
	"fmt"

	"github.com/alexanderramin/grove/internal/cli/formatter"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/spf13/cobra"
)

func newCategoryCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"garden"},
		Short:   "Manage focus categories",
	}

	cmd.AddCommand(
		newCategoryAddCmd(a),
		newCategoryListCmd(a),
		newCategoryEditCmd(a),
		newCategoryRemoveCmd(a),
		newCategoryColorsCmd(a),
	)

	return cmd
}

func newCategoryAddCmd(a *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				if !a.isInteractive() {
					return fmt.Errorf("--name is required")
				}
				if err := categoryForm(&name, &color).Run(); err != nil {
					return err
				}
			}

			c := &domain.Category{Name: name, Color: color}
			if err := a.Categories.Create(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s  %s\n", formatter.CategoryLabel(*c, true), formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name")
	cmd.Flags().StringVar(&color, "color", "", "Hex color such as #22c55e (default "+domain.DefaultCategoryColor+")")
	return cmd
}

func newCategoryListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories with their recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := a.dashboardUseCase()
			if dash == nil {
				return fmt.Errorf("dashboard use case is not configured")
			}
			resp, err := dash.GetDashboard(cmd.Context(), a.dashboardRequest())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCategoryStats(resp.Stats, resp.WindowDays))
			return nil
		},
	}
}

func newCategoryEditCmd(a *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "edit CATEGORY",
		Short: "Rename or recolor a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := resolveCategory(ctx, a, args[0])
			if err != nil {
				return err
			}

			nameSet := cmd.Flags().Changed("name")
			colorSet := cmd.Flags().Changed("color")
			switch {
			case nameSet || colorSet:
				if nameSet {
					c.Name = name
				}
				if colorSet {
					c.Color = color
				}
			case a.isInteractive():
				if err := categoryForm(&c.Name, &c.Color).Run(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("nothing to change: pass --name and/or --color")
			}

			if err := a.Categories.Update(ctx, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatter.CategoryLabel(*c, true))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&color, "color", "", "New hex color")
	return cmd
}

func newCategoryRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove CATEGORY",
		Aliases: []string{"rm"},
		Short:   "Remove a category and all of its sessions",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := resolveCategory(ctx, a, args[0])
			if err != nil {
				return err
			}
			removed, err := a.Categories.Delete(ctx, c.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s and %d sessions\n", c.Name, removed)
			return nil
		},
	}
}

func newCategoryColorsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Show the preset category colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPalette(domain.PresetColors))
			return nil
		},
	}
}
