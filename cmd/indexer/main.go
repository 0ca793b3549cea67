// Command indexer runs the on-chain indexer: it watches
// confirmed transactions touching the SPL Token and Bubblegum
// programs over a Dragon's Mouth (Yellowstone gRPC) geyser feed and
// republishes every ownership change it observes.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/holaplex/hub-nfts-solana-go/internal/bus"
	"github.com/holaplex/hub-nfts-solana-go/internal/config"
	"github.com/holaplex/hub-nfts-solana-go/internal/core"
	"github.com/holaplex/hub-nfts-solana-go/internal/indexer"
	"github.com/holaplex/hub-nfts-solana-go/internal/metrics"
	"github.com/holaplex/hub-nfts-solana-go/rpc"
)

func main() {
	v := viper.New()
	root := &cobra.Command{
		Use:   "indexer",
		Short: "Watch on-chain SPL Token and Bubblegum ownership changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), config.Load(v))
		},
	}
	config.RegisterFlags(root, v)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		logger, _ := zap.NewProduction()
		logger.Sugar().Fatalw("indexer exited", "error", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	zl, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer zl.Sync() //nolint:errcheck
	logger := zl.Sugar()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return err
	}
	store := core.NewGormStore(db)

	reg := metrics.NewRegistry()
	healthServer := metrics.NewServer(reg, cfg.Port)
	go func() {
		if err := healthServer.Run(ctx); err != nil {
			logger.Errorw("metrics server exited", "error", err)
		}
	}()

	producer := bus.NewProducer(cfg.KafkaBrokers, bus.TopicNftEvents)
	defer producer.Close() //nolint:errcheck

	processor := &indexer.Processor{
		Store:   store,
		RPC:     rpc.New(cfg.SolanaEndpoint),
		Publish: producer,
		Logger:  logger,
	}

	ix := indexer.New(cfg.DragonMouthEndpoint, cfg.DragonMouthXToken, cfg.Parallelism, processor, reg, logger)
	return ix.Run(ctx)
}
