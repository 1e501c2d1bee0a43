package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ml4phys/lhcdata/internal/cli/formatter"
	"github.com/ml4phys/lhcdata/internal/domain"
	"github.com/ml4phys/lhcdata/internal/service"
)

// lhcdataHuhTheme builds a huh theme matching the lhcdata color palette.
func lhcdataHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
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

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// pickFetchRequest shows an interactive form selecting a dataset and a
// destination directory.
func pickFetchRequest() (service.FetchRequest, error) {
	var req service.FetchRequest

	datasets := domain.Datasets()
	options := make([]huh.Option[int], 0, len(datasets))
	for _, ds := range datasets {
		label := fmt.Sprintf("%d: %s (%s)", ds.ID, ds.Description, ds.Archive)
		options = append(options, huh.NewOption(label, ds.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Dataset").
				Options(options...).
				Value(&req.DatasetID),
			destInput(&req.DestDir),
		),
	).WithTheme(lhcdataHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return req, err
	}
	return req, nil
}

// pickDestDir prompts for just the destination directory.
func pickDestDir() (string, error) {
	var dest string

	form := huh.NewForm(
		huh.NewGroup(destInput(&dest)),
	).WithTheme(lhcdataHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return dest, nil
}

// destInput returns a huh.Input for an existing destination directory.
func destInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Destination directory").
		Placeholder(".").
		Value(value).
		Validate(validateDestDir)
}

// validateDestDir accepts an existing directory path.
func validateDestDir(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("enter a destination directory")
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("no such directory: %s", s)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", s)
	}
	return nil
}
