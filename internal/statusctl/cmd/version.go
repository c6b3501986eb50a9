package cmd

import (
	"VCS_Status_Monitor/internal/statusctl/style"
	"fmt"

	"github.com/spf13/cobra"
)

var Version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show statusctl and status service versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s\n", style.Bold.Render("statusctl"), Version)

		health, err := client.Health()
		if err != nil {
			fmt.Printf("%s %s\n", style.DimText.Render("api"), style.Unhealthy.Render("unreachable"))
			return nil
		}
		fmt.Printf("%s %s %s\n", style.DimText.Render("api"), health.Version, style.Healthy.Render(health.Status))
		return nil
	},
}
