package indexer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/internal/core"
	"github.com/holaplex/hub-nfts-solana-go/internal/events"
	"github.com/holaplex/hub-nfts-solana-go/programs/token"
	"github.com/holaplex/hub-nfts-solana-go/programs/bubblegum"
	"github.com/holaplex/hub-nfts-solana-go/rpc"
)

// Processor inspects one confirmed transaction's instructions for
// SPL Token and Bubblegum ownership changes and republishes every one
// it finds as a MintOwnershipUpdate. It is deliberately unaware of
// the request/response event lifecycle in internal/events — this is
// an out-of-band observer, not a participant in it.
type Processor struct {
	Store   core.Store
	RPC     *rpc.Client
	Publish events.Publisher
	Logger  *zap.SugaredLogger
}

// Process walks every instruction of tx, in order, and emits one
// MintOwnershipUpdate per ownership change it finds. A single
// transaction can carry more than one relevant instruction (e.g. a
// marketplace settling several sales atomically); all of them are
// processed.
func (p *Processor) Process(ctx context.Context, tx RawTransaction) {
	for _, inst := range tx.Instructions {
		switch inst.ProgramID {
		case token.ProgramID:
			p.processToken(ctx, tx, inst)
		case bubblegum.ProgramID:
			p.processBubblegum(ctx, tx, inst)
		}
	}
}

func (p *Processor) processToken(ctx context.Context, tx RawTransaction, inst RawInstruction) {
	change, ok, err := decodeTokenTransfer(inst)
	if err != nil {
		p.Logger.Warnw("decode token instruction failed", "signature", tx.Signature, "error", err)
		return
	}
	if !ok {
		return
	}

	mint, err := p.Store.GetCollectionMintByATA(ctx, change.Source.String())
	if err != nil {
		if err != core.ErrRecordNotFound {
			p.Logger.Warnw("lookup collection mint by source ata failed", "ata", change.Source, "error", err)
		}
		return
	}

	newOwner, err := p.resolveTokenAccountOwner(ctx, change.Destination)
	if err != nil {
		p.Logger.Warnw("resolve destination token account owner failed", "ata", change.Destination, "error", err)
		return
	}

	if err := p.Store.UpdateCollectionMintOwner(ctx, mint.ID, newOwner.String(), change.Destination.String()); err != nil {
		p.Logger.Warnw("update collection mint owner failed", "mint", mint.ID, "error", err)
		return
	}

	p.emit(ctx, events.MintOwnershipUpdate{
		MintAddress: mint.Mint,
		Sender:      mint.Owner,
		Recipient:   newOwner.String(),
		TxSignature: tx.Signature.String(),
	})
}

func (p *Processor) processBubblegum(ctx context.Context, tx RawTransaction, inst RawInstruction) {
	change, ok, err := decodeBubblegumTransfer(inst)
	if err != nil {
		p.Logger.Warnw("decode bubblegum instruction failed", "signature", tx.Signature, "error", err)
		return
	}
	if !ok {
		return
	}

	assetID, _, err := solana.FindBubblegumAssetID(change.MerkleTree, change.Nonce)
	if err != nil {
		p.Logger.Warnw("derive bubblegum asset id failed", "tree", change.MerkleTree, "nonce", change.Nonce, "error", err)
		return
	}

	leaf, err := p.Store.GetCompressionLeafByAssetID(ctx, assetID.String())
	if err != nil {
		if err != core.ErrRecordNotFound {
			p.Logger.Warnw("lookup compression leaf by asset id failed", "asset", assetID, "error", err)
		}
		return
	}

	if err := p.Store.UpdateCompressionLeafOwner(ctx, assetID.String(), change.Recipient.String()); err != nil {
		p.Logger.Warnw("update compression leaf owner failed", "leaf", leaf.ID, "error", err)
		return
	}

	p.emit(ctx, events.MintOwnershipUpdate{
		MintAddress: assetID.String(),
		Sender:      change.Sender.String(),
		Recipient:   change.Recipient.String(),
		TxSignature: tx.Signature.String(),
	})
}

// resolveTokenAccountOwner fetches a token account's raw data over
// RPC and reads the owner field out of the SPL Token Account layout
// (mint[0:32], owner[32:64], amount[64:72], ...).
func (p *Processor) resolveTokenAccountOwner(ctx context.Context, ata solana.PublicKey) (solana.PublicKey, error) {
	result, err := p.RPC.GetAccountInfo(ctx, ata, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("fetch token account: %w", err)
	}
	if result.Value == nil || result.Value.Data == nil {
		return solana.PublicKey{}, fmt.Errorf("token account %s not found", ata)
	}

	raw := result.Value.Data.GetBinary()
	if len(raw) < 64 {
		return solana.PublicKey{}, fmt.Errorf("token account %s data too short", ata)
	}

	return solana.PublicKeyFromBytes(raw[32:64]), nil
}

func (p *Processor) emit(ctx context.Context, event events.MintOwnershipUpdate) {
	if err := p.Publish.Publish(ctx, event.MintAddress, event); err != nil {
		p.Logger.Errorw("publish mint ownership update failed", "mint", event.MintAddress, "error", err)
	}
}
