package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/grove/internal/cli/formatter"
	"github.com/alexanderramin/grove/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// groveHuhTheme returns a huh theme built on the formatter's Gruvbox palette.
func groveHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// sessionDraft holds form state for logging a session. Minutes stays a
// string until the form is submitted.
type sessionDraft struct {
	CategoryID string
	Title      string
	Minutes    string
	Status     string
	Date       string
}

func (d sessionDraft) toSession() (*domain.Session, error) {
	minutes, err := parseMinutes(d.Minutes)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		CategoryID:     d.CategoryID,
		Title:          d.Title,
		MinutesFocused: minutes,
		Status:         domain.SessionStatus(d.Status),
		DateISO:        d.Date,
	}, nil
}

func parseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("minutes must be a whole number greater than 0")
	}
	return n, nil
}

func notBlank(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func categoryOptions(categories []*domain.Category) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		opts = append(opts, huh.NewOption(formatter.Swatch(c.Color)+" "+c.Name, c.ID))
	}
	return opts
}

// sessionLogForm asks for whichever session fields are still blank.
func sessionLogForm(categories []*domain.Category, d *sessionDraft) *huh.Form {
	var fields []huh.Field
	if d.CategoryID == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Category").
			Options(categoryOptions(categories)...).
			Value(&d.CategoryID))
	}
	if d.Title == "" {
		fields = append(fields, huh.NewInput().
			Title("What did you focus on?").
			Value(&d.Title).
			Validate(notBlank("title")))
	}
	if d.Minutes == "" || d.Minutes == "0" {
		d.Minutes = ""
		fields = append(fields, huh.NewInput().
			Title("Minutes focused").
			Placeholder("25").
			Value(&d.Minutes).
			Validate(func(s string) error {
				_, err := parseMinutes(s)
				return err
			}))
	}
	fields = append(fields, huh.NewSelect[string]().
		Title("Outcome").
		Options(
			huh.NewOption("Done", string(domain.SessionDone)),
			huh.NewOption("Failed", string(domain.SessionFailed)),
		).
		Value(&d.Status))

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(groveHuhTheme()).WithShowHelp(false)
}

// categoryForm edits a category's name and color in place.
func categoryForm(name, color *string) *huh.Form {
	colorOpts := make([]huh.Option[string], 0, len(domain.PresetColors))
	for _, c := range domain.PresetColors {
		colorOpts = append(colorOpts, huh.NewOption(formatter.Swatch(c)+" "+c, c))
	}
	if *color == "" {
		*color = domain.DefaultCategoryColor
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(name).Validate(notBlank("name")),
		huh.NewSelect[string]().Title("Color").Options(colorOpts...).Value(color),
	)).WithTheme(groveHuhTheme()).WithShowHelp(false)
}
