package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/grove/internal/app"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newExportCmd(a *App) *cobra.Command {
	var out string
	formatFlag := newChoiceValue(formatJSON, formatYAML)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all categories and sessions as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := formatFlag.value
			if format == "" {
				format = formatFromPath(out)
			}
			export := a.exportUseCase()
			if export == nil {
				return fmt.Errorf("export use case is not configured")
			}
			snap, err := export.Export(cmd.Context())
			if err != nil {
				return err
			}
			data, err := encodeSnapshot(snap, format)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d categories and %d sessions to %s\n",
				len(snap.Categories), len(snap.Sessions), out)
			return nil
		},
	}

	cmd.Flags().Var(formatFlag, "format", "json or yaml (default from --out extension, else json)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newImportCmd(a *App) *cobra.Command {
	formatFlag := newChoiceValue(formatJSON, formatYAML)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all data with the contents of an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format := formatFlag.value
			if format == "" {
				format = formatFromPath(path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			snap, err := decodeSnapshot(data, format)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}

			imp := a.importUseCase()
			if imp == nil {
				return fmt.Errorf("import use case is not configured")
			}
			result, err := imp.Import(cmd.Context(), snap)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d categories and %d sessions\n",
				result.CategoryCount, result.SessionCount)
			return nil
		},
	}

	cmd.Flags().Var(formatFlag, "format", "json or yaml (default from file extension)")
	return cmd
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func encodeSnapshot(snap *app.Snapshot, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case formatYAML:
		return yaml.Marshal(snap)
	default:
		return nil, fmt.Errorf("unknown format %q (use json or yaml)", format)
	}
}

func decodeSnapshot(data []byte, format string) (*app.Snapshot, error) {
	var snap app.Snapshot
	var err error
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &snap)
	case formatYAML:
		err = yaml.Unmarshal(data, &snap)
	default:
		return nil, fmt.Errorf("unknown format %q (use json or yaml)", format)
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
