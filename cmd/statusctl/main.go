package main

import (
	"VCS_Status_Monitor/internal/statusctl/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
