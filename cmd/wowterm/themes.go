package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wow-terminal/internal/platform/tui"
	"github.com/vovakirdan/wow-terminal/internal/registry"
	"github.com/vovakirdan/wow-terminal/internal/shell"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes and their backdrops",
	Long:  `Shows every theme, the backdrop it animates, and the registered backdrops.`,
	Run:   runThemes,
}

var themeColors = map[shell.Theme]*color.Color{
	shell.ThemeMatrix: color.New(color.FgGreen, color.Bold),
	shell.ThemeCyber:  color.New(color.FgCyan, color.Bold),
	shell.ThemeWow:    color.New(color.FgMagenta, color.Bold),
}

func runThemes(_ *cobra.Command, _ []string) {
	titles := make(map[string]string)
	for _, bg := range registry.List() {
		titles[bg.ID] = bg.Title
	}

	fmt.Println("Themes:")
	fmt.Println()
	for _, theme := range shell.Themes() {
		id := tui.NewPalette(nil, theme).Background
		themeColors[theme].Printf("  %-8s", theme)
		fmt.Printf("  %s (%s)\n", titles[id], id)
	}

	fmt.Println()
	color.New(color.FgHiBlack).Println("Switch with the \"theme\" command or Ctrl+T inside the terminal.")
}
