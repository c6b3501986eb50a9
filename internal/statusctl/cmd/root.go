package cmd

import (
	"VCS_Status_Monitor/internal/statusctl/api"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL   string
	apiToken string
	client   *api.Client
)

var rootCmd = &cobra.Command{
	Use:   "statusctl",
	Short: "Inspect the Orcest status service from the terminal",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		client = api.New(apiURL, apiToken)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaultURL := os.Getenv("STATUS_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "status service URL")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", os.Getenv("STATUS_TOKEN"), "SSO access token")
}
