package main

import (
	"os"

	"github.com/damonto/carrier-id/internal/pkg/carrier"
	"github.com/damonto/carrier-id/internal/pkg/output"
	"github.com/damonto/carrier-id/internal/pkg/resolver"
	"github.com/spf13/cobra"
)

var (
	format   string
	roleName string
	allSlots bool
	offline  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the carrier identity of a SIM slot",
	Long: `Resolve the carrier identity of a SIM slot and, unless --offline is set,
enrich it with the remote carrier profile and the national roaming decision.

Roles:
  primary (sim)      the physical SIM
  secondary (esim)   the eSIM
  auto (current)     whichever SIM carries data`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		formatter, err := output.New(format, os.Stdout)
		if err != nil {
			return err
		}
		roles := []carrier.SlotRole{carrier.Primary, carrier.Secondary}
		if !allSlots {
			role, err := carrier.ParseSlotRole(roleName)
			if err != nil {
				return err
			}
			roles = []carrier.SlotRole{role}
		}
		r, err := newResolver(cmd.Context())
		if err != nil {
			return err
		}
		var reports []resolver.Report
		if offline {
			for _, role := range roles {
				reports = append(reports, resolver.Report{Result: r.Resolve(role)})
			}
		} else {
			reports = r.ResolveAll(cmd.Context(), roles...)
		}
		if len(reports) == 1 {
			return formatter.Format(reports[0])
		}
		return formatter.Format(reports)
	},
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show the SIM slots reported by ModemManager",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		formatter, err := output.New(format, os.Stdout)
		if err != nil {
			return err
		}
		snapshot, err := readSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		return formatter.Format(snapshot)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd, slotsCmd)

	resolveCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml")
	resolveCmd.Flags().StringVarP(&roleName, "role", "r", "auto", "SIM slot role: primary, secondary, auto")
	resolveCmd.Flags().BoolVar(&allSlots, "all", false, "Resolve both SIM slots")
	resolveCmd.Flags().BoolVar(&offline, "offline", false, "Skip the remote carrier profile")
	slotsCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml")
}
