// Command consumer runs the event processor and importer: it reads
// NFT intents and treasury signing results off
// Kafka, assembles and submits Solana transactions, and republishes
// outbound lifecycle events and import progress.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/internal/assembly"
	"github.com/holaplex/hub-nfts-solana-go/internal/bus"
	"github.com/holaplex/hub-nfts-solana-go/internal/config"
	"github.com/holaplex/hub-nfts-solana-go/internal/core"
	"github.com/holaplex/hub-nfts-solana-go/internal/dasclient"
	"github.com/holaplex/hub-nfts-solana-go/internal/events"
	"github.com/holaplex/hub-nfts-solana-go/internal/importer"
	"github.com/holaplex/hub-nfts-solana-go/internal/metrics"
	"github.com/holaplex/hub-nfts-solana-go/rpc"
)

func main() {
	v := viper.New()
	root := &cobra.Command{
		Use:   "consumer",
		Short: "Process Solana NFT intents and publish lifecycle events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), config.Load(v))
		},
	}
	config.RegisterFlags(root, v)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		logger, _ := zap.NewProduction()
		logger.Sugar().Fatalw("consumer exited", "error", err)
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
	if err := db.AutoMigrate(
		&core.Collection{}, &core.CollectionMint{}, &core.CompressionLeaf{}, &core.UpdateRevision{},
	); err != nil {
		return err
	}
	store := core.NewGormStore(db)

	rpcClient := rpc.New(cfg.SolanaEndpoint)
	dasClient := dasclient.New(cfg.DigitalAssetAPIEndpoint)

	treasuryWallet, err := solana.PublicKeyFromBase58(cfg.SolanaTreasuryWalletAddress)
	if err != nil {
		return fmt.Errorf("parse solana treasury wallet address: %w", err)
	}

	reg := metrics.NewRegistry()
	healthServer := metrics.NewServer(reg, cfg.Port)
	go func() {
		if err := healthServer.Run(ctx); err != nil {
			logger.Errorw("metrics server exited", "error", err)
		}
	}()

	producer := bus.NewProducer(cfg.KafkaBrokers, bus.TopicNftEvents)
	defer producer.Close() //nolint:errcheck

	processor := &events.Processor{
		Store:        store,
		Uncompressed: &assembly.Uncompressed{RPC: rpcClient, Payer: treasuryWallet},
		Compressed:   &assembly.Compressed{RPC: rpcClient, DAS: dasClient, Payer: treasuryWallet},
		Edition:      &assembly.Edition{RPC: rpcClient, Payer: treasuryWallet},
		RPC:          rpcClient,
		Publish:      producer,
		Logger:       logger,
		Payer:        treasuryWallet,
	}

	imp := importer.New(dasClient, store, producer, logger)

	intentConsumer := bus.NewConsumer(cfg.KafkaBrokers, "hub-nfts-solana-go", bus.TopicNftEvents)
	defer intentConsumer.Close() //nolint:errcheck

	signedConsumer := bus.NewConsumer(cfg.KafkaBrokers, "hub-nfts-solana-go", bus.TopicTreasuryEvents)
	defer signedConsumer.Close() //nolint:errcheck

	errCh := make(chan error, 2)
	go func() {
		errCh <- intentConsumer.Run(ctx, func(ctx context.Context, _ string, envelope bus.Envelope) error {
			return handleInbound(ctx, processor, imp, logger, envelope)
		})
	}()
	go func() {
		errCh <- signedConsumer.Run(ctx, func(ctx context.Context, _ string, envelope bus.Envelope) error {
			return handleSigned(ctx, processor, logger, envelope)
		})
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func handleInbound(ctx context.Context, processor *events.Processor, imp *importer.Importer, logger *zap.SugaredLogger, envelope bus.Envelope) error {
	if envelope.Kind == "ImportCollection" {
		var msg struct {
			Key         events.Key `json:"key"`
			MintAddress string     `json:"mint_address"`
		}
		if err := unmarshalEnvelope(envelope, &msg); err != nil {
			logger.Errorw("decode import collection message failed", "error", err)
			return nil
		}
		if err := imp.Run(ctx, msg.Key, msg.MintAddress); err != nil {
			logger.Errorw("import collection failed", "collection", msg.Key.ID, "error", err)
		}
		return nil
	}

	intent, err := events.DecodeIntent(events.Kind(envelope.Kind), envelope.Payload)
	if err != nil {
		logger.Errorw("decode intent failed", "kind", envelope.Kind, "error", err)
		return nil
	}
	return processor.Handle(ctx, intent)
}

func handleSigned(ctx context.Context, processor *events.Processor, logger *zap.SugaredLogger, envelope bus.Envelope) error {
	msg, err := events.DecodeSignedMessage(envelope.Payload)
	if err != nil {
		logger.Errorw("decode signed message failed", "error", err)
		return nil
	}
	return processor.HandleSigned(ctx, msg.Key, msg.Kind, msg.Result)
}

func unmarshalEnvelope(envelope bus.Envelope, out interface{}) error {
	return json.Unmarshal(envelope.Payload, out)
}
