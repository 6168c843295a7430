package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"sonoviz/internal/modes"
)

// modeDTO is the JSON shape printed by the modes command.
type modeDTO struct {
	Mode      string `json:"mode"`
	Title     string `json:"title"`
	Param1    string `json:"param1"`
	Param2    string `json:"param2"`
	Pointer   bool   `json:"pointer,omitempty"`
	Telemetry bool   `json:"telemetry"`
	Help      string `json:"help,omitempty"`
}

func newModesCmd() *cobra.Command {
	var withHelp bool
	cmd := &cobra.Command{
		Use:   "modes",
		Short: "List every visualization mode as JSON",
		Long: `List every registered visualization mode and its parameter labels as JSON.

Examples:
  sonoviz modes
  sonoviz modes --help-text | jq '.[] | select(.pointer)'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeModes(cmd.OutOrStdout(), modes.Builtin(), withHelp)
		},
	}
	cmd.Flags().BoolVar(&withHelp, "help-text", false, "include each mode's help text")
	return cmd
}

func writeModes(w io.Writer, registry *modes.Registry, withHelp bool) error {
	var dtos []modeDTO
	for _, m := range registry.Modes() {
		d := registry.Lookup(m)
		_, telemetry := d.Renderer.(modes.TelemetrySource)
		dto := modeDTO{
			Mode:      string(d.Mode),
			Title:     d.Title,
			Param1:    d.Param1Label,
			Param2:    d.Param2Label,
			Pointer:   d.Pointer,
			Telemetry: telemetry,
		}
		if withHelp {
			dto.Help = d.Help
		}
		dtos = append(dtos, dto)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dtos)
}
