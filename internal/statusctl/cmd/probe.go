package cmd

import (
	"VCS_Status_Monitor/internal/status-service/aggregator"
	"VCS_Status_Monitor/internal/status-service/api/dto/response"
	"VCS_Status_Monitor/internal/status-service/cache"
	"VCS_Status_Monitor/internal/status-service/events"
	"VCS_Status_Monitor/internal/status-service/probe"
	"VCS_Status_Monitor/internal/status-service/registry"
	"VCS_Status_Monitor/internal/status-service/service"
	"VCS_Status_Monitor/internal/status-service/uptime"
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	probeRegistryFile string
	probeTimeout      time.Duration
	probeConcurrency  int
)

func init() {
	probeCmd.Flags().StringVarP(&probeRegistryFile, "registry", "f", "", "registry file (built-in registry when empty)")
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", 10*time.Second, "per-service probe timeout")
	probeCmd.Flags().IntVar(&probeConcurrency, "concurrency", 0, "maximum concurrent probes (0 = unlimited)")
	probeCmd.Flags().BoolVar(&statusJSON, "json", false, "print the raw JSON response")
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Run one aggregation cycle locally without a status server",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Load(probeRegistryFile)
		if err != nil {
			return err
		}
		s, err := probeOnce(cmd.Context(), reg, probe.NewExecutor(probeTimeout))
		if err != nil {
			return err
		}
		return printStatus(s)
	},
}

func probeOnce(ctx context.Context, reg *registry.Registry, executor probe.Executor) (*response.StatusResponse, error) {
	logger := zap.NewNop()
	statusService := service.NewStatusService(
		reg,
		aggregator.NewAggregator(executor, probeConcurrency, logger),
		uptime.NewTracker(true),
		cache.NewSnapshotCache(time.Minute, logger),
		events.NewNopPublisher(),
		logger,
	)
	snapshot, err := statusService.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}
	s := response.NewStatusResponse(snapshot, Version)
	return &s, nil
}
