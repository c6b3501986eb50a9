package cmd

import (
	"VCS_Status_Monitor/internal/status-service/api/dto/response"
	"VCS_Status_Monitor/internal/statusctl/style"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var (
	statusJSON  bool
	statusWatch bool
)

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "print the raw JSON response")
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "follow live updates over the websocket stream")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current status of every monitored service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if statusWatch {
			return watchStatus()
		}
		s, err := client.Status()
		if err != nil {
			return fmt.Errorf("fetch status: %w", err)
		}
		return printStatus(s)
	},
}

func printStatus(s *response.StatusResponse) error {
	if statusJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	renderStatus(os.Stdout, s)
	return nil
}

func watchStatus() error {
	conn, _, err := websocket.DefaultDialer.Dial(client.WebSocketURL(), client.AuthHeader())
	if err != nil {
		return fmt.Errorf("connect stream: %w", err)
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("ws read: %w", err)
		}
		var s response.StatusResponse
		if err := json.Unmarshal(msg, &s); err != nil {
			fmt.Println(style.DimText.Render("skipping malformed frame"))
			continue
		}
		if err := printStatus(&s); err != nil {
			return err
		}
	}
}
