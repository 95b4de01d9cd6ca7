package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/domain"
)

// colorsCmd represents the colors command
var colorsCmd = &cobra.Command{
	Use:   "colors [name]",
	Short: "List the accent colors",
	Long: `List the accent palette. With a name, show the swatch it resolves to;
names may be abbreviated ("pist" finds "pistachio") or given as hex.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		swatches := domain.Palette
		if len(args) == 1 {
			s, err := domain.LookupSwatch(args[0])
			if err != nil {
				return fmt.Errorf("failed to find color: %w", err)
			}
			swatches = []domain.Swatch{s}
		}

		current, err := app.config.AccentColor()
		if err != nil {
			current = domain.DefaultColor
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			var colorList []map[string]interface{}
			for _, s := range swatches {
				colorList = append(colorList, map[string]interface{}{
					"name":    s.Name,
					"hex":     string(s.Color),
					"current": s.Color == current,
				})
			}
			data := map[string]interface{}{
				"colors": colorList,
				"count":  len(colorList),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal colors: %w", err)
			}
			fmt.Fprintln(out, string(jsonData))
			return nil
		}

		fmt.Fprintf(out, "🎨 Colors (%d):\n\n", len(swatches))
		for _, s := range swatches {
			icon := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(app.config.Theme.IconSwatch)
			marker := ""
			if s.Color == current {
				marker = "  (current)"
			}
			fmt.Fprintf(out, "%s %-10s %s%s\n", icon, s.Name, s.Color, marker)
		}
		return nil
	},
}
