package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gridmeta/gridmeta/compat"
	"github.com/gridmeta/gridmeta/errors"
	"github.com/gridmeta/gridmeta/version"
)

// spanReport is the human/yaml rendering of one feature lifetime.
type spanReport struct {
	Feature string `yaml:"feature"`
	Since   string `yaml:"since"`
	Until   string `yaml:"until,omitempty"`
}

// featuresReport is the yaml document emitted by `gridmeta features`.
type featuresReport struct {
	Version             string                  `yaml:"version"`
	MinCompatibleServer string                  `yaml:"min_compatible_server"`
	MinCompatibleClient string                  `yaml:"min_compatible_client"`
	Roles               map[string][]spanReport `yaml:"roles"`
}

// FeaturesCmd represents the features command
var FeaturesCmd = &cobra.Command{
	Use:   "features",
	Short: "Show the feature lifetimes behind the compatibility check",
	Long: `List every protocol feature the compatibility registry tracks, with the
version interval [since, until) during which each role provides or
exercises it. "reserved" marks a feature recorded for a future client
build that no released client uses yet.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		roleArg, _ := cmd.Flags().GetString("role")
		format, _ := cmd.Flags().GetString("format")

		reg, err := compat.Default()
		if err != nil {
			return err
		}

		roles := []compat.Role{compat.RoleServer, compat.RoleClient}
		if roleArg != "" {
			role, ok := compat.ParseRole(roleArg)
			if !ok {
				return errors.Newf("unknown role %q (want server or client)", roleArg)
			}
			roles = []compat.Role{role}
		}

		switch format {
		case "yaml":
			return printFeaturesYAML(cmd, reg, roles)
		case "table":
			printFeaturesTable(reg, roles)
			return nil
		default:
			return errors.Newf("unknown format %q (want table or yaml)", format)
		}
	},
}

func printFeaturesTable(reg *compat.Registry, roles []compat.Role) {
	for _, role := range roles {
		pterm.DefaultSection.Printf("%s features at %s", role, reg.Version())

		rows := pterm.TableData{{"Feature", "Since", "Until"}}
		for _, span := range reg.Spans(role) {
			r := reportSpan(span)
			rows = append(rows, []string{r.Feature, r.Since, orDash(r.Until)})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	}

	pterm.Info.Printf("Min compatible server: %s\n", reg.MinCompatibleServerVersion())
	pterm.Info.Printf("Min compatible client: %s\n", reg.MinCompatibleClientVersion())
}

func printFeaturesYAML(cmd *cobra.Command, reg *compat.Registry, roles []compat.Role) error {
	report := featuresReport{
		Version:             reg.Version().String(),
		MinCompatibleServer: reg.MinCompatibleServerVersion().String(),
		MinCompatibleClient: reg.MinCompatibleClientVersion().String(),
		Roles:               make(map[string][]spanReport, len(roles)),
	}
	for _, role := range roles {
		spans := reg.Spans(role)
		reports := make([]spanReport, 0, len(spans))
		for _, span := range spans {
			reports = append(reports, reportSpan(span))
		}
		report.Roles[role.String()] = reports
	}

	encoded, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(encoded))
	return nil
}

func reportSpan(s compat.Span) spanReport {
	r := spanReport{Feature: s.Feature.String(), Since: s.Since.String()}
	if s.Since == version.Max() {
		r.Since = "reserved"
	}
	if s.Until != version.Max() {
		r.Until = s.Until.String()
	}
	return r
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	FeaturesCmd.Flags().StringP("role", "r", "", "Limit output to one role: server or client")
	FeaturesCmd.Flags().StringP("format", "f", "table", "Output format: table or yaml")
}
