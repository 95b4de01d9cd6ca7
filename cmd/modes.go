package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/domain"
)

// modesCmd represents the modes command
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the timer modes",
	Long:  `List the three timer modes with their durations and shortcut keys.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if jsonOutput {
			var modeList []map[string]interface{}
			for i, m := range domain.Modes {
				modeList = append(modeList, map[string]interface{}{
					"name":    string(m),
					"label":   m.Label(),
					"seconds": m.Seconds(),
					"clock":   domain.FormatClock(m.Seconds()),
					"key":     fmt.Sprint(i + 1),
				})
			}
			data := map[string]interface{}{
				"modes": modeList,
				"count": len(modeList),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal modes: %w", err)
			}
			fmt.Fprintln(out, string(jsonData))
			return nil
		}

		fmt.Fprintf(out, "⏱  Modes (%d):\n\n", len(domain.Modes))
		for i, m := range domain.Modes {
			fmt.Fprintf(out, "[%d] %-12s %s  (%s)\n", i+1, m.Label(), domain.FormatClock(m.Seconds()), m)
		}
		return nil
	},
}
