package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridmeta/gridmeta/compat"
	"github.com/gridmeta/gridmeta/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show gridmeta version and compatibility information",
	Long: `Display version, build time, commit hash and platform information for
this gridmeta binary, together with the oldest peer builds it can
handshake with.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		info := version.Get()
		reg, err := compat.Default()
		if err != nil {
			return err
		}

		if jsonOutput {
			out := struct {
				version.Info
				MinCompatibleServer string `json:"min_compatible_server"`
				MinCompatibleClient string `json:"min_compatible_client"`
			}{
				Info:                info,
				MinCompatibleServer: reg.MinCompatibleServerVersion().String(),
				MinCompatibleClient: reg.MinCompatibleClientVersion().String(),
			}
			encoded, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", info.Platform)
		fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", info.GoVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "Min compatible server: %s\n", reg.MinCompatibleServerVersion())
		fmt.Fprintf(cmd.OutOrStdout(), "Min compatible client: %s\n", reg.MinCompatibleClientVersion())
		return nil
	},
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}
