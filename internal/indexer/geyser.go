package indexer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	pb "github.com/rpcpool/yellowstone-grpc/golang/proto"

	solana "github.com/holaplex/hub-nfts-solana-go"
)

// geyserSource streams confirmed transactions touching a single
// program id from a Dragon's Mouth (Yellowstone gRPC) geyser plugin.
// Each call to Run owns one subscription for the lifetime of the
// passed context, retrying the stream itself with backoff — one
// geyserSource per watched program id is how the two independent
// streams this component keeps are kept from interfering with each
// other: a reconnect on one never disturbs the other's cursor.
type geyserSource struct {
	endpoint string
	xToken   string
	filterID string // a label, e.g. "spl_token" or "mpl_bubblegum"
	programID solana.PublicKey
	logger   *zap.SugaredLogger
}

// Event is one decoded update off a geyser stream: either a
// transaction (Tx populated) or a slot commitment (Slot populated,
// Tx's zero value).
type geyserEvent struct {
	Tx       *RawTransaction
	SlotSeen uint64
	IsSlot   bool
}

func (s *geyserSource) Run(ctx context.Context, out chan<- geyserEvent) error {
	op := func() (struct{}, error) {
		err := s.runOnce(ctx, out)
		if ctx.Err() != nil {
			return struct{}{}, backoff.Permanent(ctx.Err())
		}
		return struct{}{}, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second

	_, err := backoff.Retry(ctx, op, backoff.WithBackOff(b), backoff.WithMaxTries(10))
	return err
}

func (s *geyserSource) runOnce(ctx context.Context, out chan<- geyserEvent) error {
	creds := credentials.NewTLS(nil)
	if s.endpoint == "" {
		creds = insecure.NewCredentials()
	}

	conn, err := grpc.DialContext(ctx, s.endpoint, grpc.WithTransportCredentials(creds))
	if err != nil {
		return fmt.Errorf("dial geyser endpoint: %w", err)
	}
	defer conn.Close()

	client := pb.NewGeyserClient(conn)

	streamCtx := ctx
	if s.xToken != "" {
		streamCtx = metadata.AppendToOutgoingContext(ctx, "x-token", s.xToken)
	}

	stream, err := client.Subscribe(streamCtx)
	if err != nil {
		return fmt.Errorf("open geyser subscribe stream: %w", err)
	}

	commitment := pb.CommitmentLevel_FINALIZED
	req := &pb.SubscribeRequest{
		Transactions: map[string]*pb.SubscribeRequestFilterTransactions{
			s.filterID: {
				AccountInclude: []string{s.programID.String()},
			},
		},
		Slots:      map[string]*pb.SubscribeRequestFilterSlots{s.filterID: {}},
		Commitment: &commitment,
	}
	if err := stream.Send(req); err != nil {
		return fmt.Errorf("send geyser subscribe request: %w", err)
	}

	for {
		update, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("receive geyser update: %w", err)
		}

		if slot := update.GetSlot(); slot != nil {
			select {
			case out <- geyserEvent{IsSlot: true, SlotSeen: slot.GetSlot()}:
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		txUpdate := update.GetTransaction()
		if txUpdate == nil {
			continue
		}
		tx, ok := decodeGeyserTransaction(txUpdate)
		if !ok {
			continue
		}

		select {
		case out <- geyserEvent{Tx: &tx}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// decodeGeyserTransaction translates the wire proto transaction into
// this package's domain RawTransaction, resolving every compiled
// instruction's account-key indices to public keys up front so the
// per-program decoders never see the index table. Only outer
// (top-level) instructions are kept: ownership-change detection must
// never see a transfer nested as a CPI inside some unrelated outer
// instruction.
func decodeGeyserTransaction(update *pb.SubscribeUpdateTransaction) (RawTransaction, bool) {
	info := update.GetTransaction()
	if info == nil || info.GetTransaction() == nil {
		return RawTransaction{}, false
	}

	msg := info.GetTransaction().GetMessage()
	if msg == nil {
		return RawTransaction{}, false
	}

	keys := make([]solana.PublicKey, 0, len(msg.GetAccountKeys()))
	for _, k := range msg.GetAccountKeys() {
		keys = append(keys, solana.PublicKeyFromBytes(k))
	}

	var instructions []RawInstruction
	for _, ci := range msg.GetInstructions() {
		idx := int(ci.GetProgramIdIndex())
		if idx < 0 || idx >= len(keys) {
			continue
		}
		accounts := make([]solana.PublicKey, 0, len(ci.GetAccounts()))
		for _, a := range ci.GetAccounts() {
			if int(a) >= len(keys) {
				continue
			}
			accounts = append(accounts, keys[a])
		}
		instructions = append(instructions, RawInstruction{
			ProgramID: keys[idx],
			Accounts:  accounts,
			Data:      ci.GetData(),
		})
	}

	return RawTransaction{
		Slot:         update.GetSlot(),
		Signature:    solana.SignatureFromBytes(info.GetSignature()),
		Instructions: instructions,
	}, true
}
