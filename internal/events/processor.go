package events

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"go.uber.org/zap"

	solana "github.com/holaplex/hub-nfts-solana-go"
	"github.com/holaplex/hub-nfts-solana-go/internal/assembly"
	"github.com/holaplex/hub-nfts-solana-go/internal/core"
	"github.com/holaplex/hub-nfts-solana-go/programs/bubblegum"
	"github.com/holaplex/hub-nfts-solana-go/rpc"
)

// Publisher delivers an outbound event onto the downstream topic. Its
// one implementation lives in internal/bus; Processor only depends on
// this narrow seam so it can be tested without a broker.
type Publisher interface {
	Publish(ctx context.Context, key string, event interface{}) error
}

// Processor drives the two-phase assemble → sign → submit lifecycle
// over the three assembly backends, persisting through Store and
// publishing through Publish.
type Processor struct {
	Store        core.Store
	Uncompressed *assembly.Uncompressed
	Compressed   *assembly.Compressed
	Edition      *assembly.Edition
	RPC          *rpc.Client
	Publish      Publisher
	Logger       *zap.SugaredLogger
	// Payer is the treasury wallet address every assembled transaction
	// names as fee payer, recorded alongside stored update revisions so
	// a later retry can be audited against the wallet that originally
	// signed it.
	Payer solana.PublicKey
}

func (p *Processor) emit(ctx context.Context, key Key, event interface{}) {
	if err := p.Publish.Publish(ctx, key.ID, event); err != nil {
		p.Logger.Errorw("publish outbound event failed", "id", key.ID, "error", err)
	}
}

// Handle runs the assemble phase of an intent: on success it persists
// the relevant row and emits SigningRequested; on failure it emits
// Failed(Assemble) and never SigningRequested, since the treasury must
// never be asked to sign a transaction the system never committed to.
func (p *Processor) Handle(ctx context.Context, intent Intent) error {
	if _, err := uuid.Parse(intent.Key.ID); err != nil {
		return p.failAssemble(ctx, intent.Key, intent.Kind, newError(ErrInvalidUUID, intent.Kind, SourceNftFailure, err))
	}

	var (
		pending *assembly.PendingTransaction
		err     error
	)

	switch intent.Kind {
	case KindCreateCollection, KindCreateEditionDrop, KindCreateOpenDrop,
		KindRetryCreateCollection, KindRetryCreateEditionDrop, KindRetryCreateOpenDrop:
		pending, err = p.assembleCreate(ctx, intent.Key, intent.Payload)

	case KindMintToCollection, KindMintOpenDrop, KindRetryMintToCollection, KindRetryMintOpenDrop:
		pending, err = p.assembleMint(ctx, intent.Key, intent.Kind, intent.Payload)

	case KindMintEditionDrop, KindRetryMintEditionDrop:
		pending, err = p.assembleEdition(ctx, intent.Key, intent.Payload)

	case KindUpdateCollection, KindUpdateEditionDrop, KindUpdateOpenDrop:
		pending, err = p.assembleUpdate(ctx, intent.Payload)

	case KindUpdateCollectionMint:
		pending, err = p.assembleUpdateMint(ctx, intent.Key, intent.Payload)

	case KindRetryUpdateCollectionMint:
		pending, err = p.assembleRetryUpdateMint(ctx, intent.Payload)

	case KindSwitchMintCollection:
		pending, err = p.assembleSwitch(ctx, intent.Payload)

	case KindTransferAsset:
		pending, err = p.assembleTransfer(ctx, intent.Payload)

	default:
		err = fmt.Errorf("unhandled event kind %q", intent.Kind)
	}

	if err != nil {
		return p.failAssemble(ctx, intent.Key, intent.Kind, err)
	}

	p.emit(ctx, intent.Key, SigningRequested{
		Key:     intent.Key,
		Kind:    intent.Kind,
		Pending: NewSolanaPendingTransaction(pending),
	})
	return nil
}

func (p *Processor) failAssemble(ctx context.Context, key Key, kind Kind, err error) error {
	p.Logger.Warnw("assembly failed", "id", key.ID, "kind", kind, "error", err)
	p.emit(ctx, key, Failed{Key: key, Kind: kind, Reason: ReasonAssemble, Error: err.Error()})
	return err
}

func (p *Processor) assembleCreate(ctx context.Context, key Key, payload interface{}) (*assembly.PendingTransaction, error) {
	intent, ok := payload.(CreatePayload)
	if !ok {
		return nil, fmt.Errorf("create intent: unexpected payload type %T", payload)
	}
	pending, addrs, err := p.Uncompressed.Create(ctx, intent)
	if err != nil {
		return nil, err
	}
	if err := p.Store.UpsertCollection(ctx, &core.Collection{
		ID:                     key.ID,
		Mint:                   addrs.Mint.String(),
		Metadata:               addrs.Metadata.String(),
		MasterEdition:          addrs.MasterEdition.String(),
		AssociatedTokenAccount: addrs.AssociatedTokenAccount.String(),
		Owner:                  intent.Owner.String(),
		UpdateAuthority:        intent.Owner.String(),
	}); err != nil {
		return nil, newError(ErrDB, KindCreateCollection, SourceNftSignRequest, err)
	}
	return pending, nil
}

func (p *Processor) assembleMint(ctx context.Context, key Key, kind Kind, payload interface{}) (*assembly.PendingTransaction, error) {
	intent, ok := payload.(MintPayload)
	if !ok {
		return nil, fmt.Errorf("mint intent: unexpected payload type %T", payload)
	}

	// RetryMintToCollection/RetryMintOpenDrop force the uncompressed
	// backend even when the original mint was compressed.
	compressed := intent.Compressed && !kind.IsRetry()

	if compressed {
		pending, addrs, err := p.Compressed.Mint(ctx, assembly.CompressedMintIntent{
			MerkleTree:              intent.MerkleTree,
			Owner:                   intent.Owner,
			Recipient:               intent.Recipient,
			CollectionMint:          intent.CollectionMint,
			CollectionMetadata:      intent.CollectionMetadata,
			CollectionMasterEdition: intent.CollectionMasterEdition,
			Metadata:                intent.Metadata,
		})
		if err != nil {
			return nil, err
		}
		if err := p.Store.UpsertCompressionLeaf(ctx, &core.CompressionLeaf{
			ID:            key.ID,
			CollectionID:  intent.CollectionID,
			MerkleTree:    addrs.MerkleTree.String(),
			TreeAuthority: addrs.TreeAuthority.String(),
			TreeDelegate:  intent.Owner.String(),
			LeafOwner:     addrs.LeafOwner.String(),
		}); err != nil {
			return nil, newError(ErrDB, kind, SourceNftSignRequest, err)
		}
		return pending, nil
	}

	pending, addrs, err := p.Uncompressed.Mint(ctx, assembly.MintIntent{
		Mint:                    intent.Mint,
		Owner:                   intent.Owner,
		Recipient:               intent.Recipient,
		CollectionMint:          intent.CollectionMint,
		CollectionMetadata:      intent.CollectionMetadata,
		CollectionMasterEdition: intent.CollectionMasterEdition,
		Metadata:                intent.Metadata,
	})
	if err != nil {
		return nil, err
	}
	if err := p.Store.UpsertCollectionMint(ctx, &core.CollectionMint{
		ID:                     key.ID,
		CollectionID:           intent.CollectionID,
		Mint:                   addrs.Mint.String(),
		Owner:                  intent.Recipient.String(),
		AssociatedTokenAccount: addrs.AssociatedTokenAccount.String(),
	}); err != nil {
		return nil, newError(ErrDB, kind, SourceNftSignRequest, err)
	}
	return pending, nil
}

func (p *Processor) assembleEdition(ctx context.Context, key Key, payload interface{}) (*assembly.PendingTransaction, error) {
	intent, ok := payload.(EditionPayload)
	if !ok {
		return nil, fmt.Errorf("edition intent: unexpected payload type %T", payload)
	}
	pending, addrs, err := p.Edition.Mint(ctx, intent.mintIntent())
	if err != nil {
		return nil, err
	}
	if err := p.Store.UpsertCollectionMint(ctx, &core.CollectionMint{
		ID:                     key.ID,
		CollectionID:           intent.CollectionID,
		Mint:                   addrs.Mint.String(),
		Owner:                  intent.Recipient.String(),
		AssociatedTokenAccount: addrs.AssociatedTokenAccount.String(),
	}); err != nil {
		return nil, newError(ErrDB, KindMintEditionDrop, SourceNftSignRequest, err)
	}
	return pending, nil
}

func (p *Processor) assembleUpdate(ctx context.Context, payload interface{}) (*assembly.PendingTransaction, error) {
	intent, ok := payload.(UpdatePayload)
	if !ok {
		return nil, fmt.Errorf("update intent: unexpected payload type %T", payload)
	}
	pending, _, err := p.Uncompressed.Update(ctx, intent.Metadata, intent.UpdateAuthority, intent.Data)
	return pending, err
}

func (p *Processor) assembleUpdateMint(ctx context.Context, key Key, payload interface{}) (*assembly.PendingTransaction, error) {
	intent, ok := payload.(UpdateCollectionMintPayload)
	if !ok {
		return nil, fmt.Errorf("update-mint intent: unexpected payload type %T", payload)
	}
	pending, addrs, err := p.Uncompressed.UpdateMint(ctx, intent.Metadata, intent.UpdateAuthority, intent.CollectionMint, intent.Data)
	if err != nil {
		return nil, err
	}
	if err := p.Store.UpsertUpdateRevision(ctx, &core.UpdateRevision{
		ID:                key.ID,
		MintID:            intent.CollectionMintID,
		SerializedMessage: pending.SerializedMessage,
		Payer:             p.Payer.String(),
		Metadata:          addrs.Metadata.String(),
		UpdateAuthority:   intent.UpdateAuthority.String(),
	}); err != nil {
		return nil, newError(ErrDB, KindUpdateCollectionMint, SourceNftSignRequest, err)
	}
	return pending, nil
}

func (p *Processor) assembleRetryUpdateMint(ctx context.Context, payload interface{}) (*assembly.PendingTransaction, error) {
	intent, ok := payload.(RetryUpdateCollectionMintPayload)
	if !ok {
		return nil, fmt.Errorf("retry-update-mint intent: unexpected payload type %T", payload)
	}
	rev, err := p.Store.GetUpdateRevision(ctx, intent.UpdateRevisionID)
	if err != nil {
		if err == core.ErrRecordNotFound {
			return nil, newError(ErrRecordNotFound, KindRetryUpdateCollectionMint, SourceNftFailure, err)
		}
		return nil, err
	}
	return p.Uncompressed.RetryUpdateMint(ctx, &assembly.PendingTransaction{SerializedMessage: rev.SerializedMessage})
}

func (p *Processor) assembleSwitch(ctx context.Context, payload interface{}) (*assembly.PendingTransaction, error) {
	intent, ok := payload.(SwitchPayload)
	if !ok {
		return nil, fmt.Errorf("switch intent: unexpected payload type %T", payload)
	}
	pending, _, err := p.Uncompressed.Switch(
		ctx,
		intent.Metadata, intent.UpdateAuthority,
		intent.OldCollectionMint, intent.OldCollectionMetadata, intent.OldCollectionMasterEdition,
		intent.NewCollectionMint, intent.NewCollectionMetadata, intent.NewCollectionMasterEdition,
	)
	return pending, err
}

func (p *Processor) assembleTransfer(ctx context.Context, payload interface{}) (*assembly.PendingTransaction, error) {
	intent, ok := payload.(TransferPayload)
	if !ok {
		return nil, fmt.Errorf("transfer intent: unexpected payload type %T", payload)
	}

	if intent.CompressionLeafID != "" {
		pending, _, err := p.Compressed.Transfer(ctx, intent.AssetID, intent.MerkleTree, intent.Sender, intent.Recipient)
		return pending, err
	}

	pending, _, err := p.Uncompressed.Transfer(ctx, intent.Mint, intent.Sender, intent.Recipient)
	return pending, err
}

// HandleSigned runs the submit phase: it rebuilds a transaction from
// the treasury's co-signed message, sends it, and emits Submitted or
// Failed(Submit). A treasury-reported signing failure short-circuits
// straight to Failed(Sign).
func (p *Processor) HandleSigned(ctx context.Context, key Key, kind Kind, result SolanaTransactionResult) error {
	if result.Status == TransactionFailed {
		err := fmt.Errorf("treasury reported signing failure")
		p.Logger.Warnw("signing failed", "id", key.ID, "kind", kind)
		p.emit(ctx, key, Failed{Key: key, Kind: kind, Reason: ReasonSign, Error: err.Error()})
		return err
	}

	sigs := make([]solana.Signature, len(result.SignedMessageSignatures))
	for i, s := range result.SignedMessageSignatures {
		sig, err := solana.SignatureFromBase58(s)
		if err != nil {
			return p.failSubmit(ctx, key, kind, newError(ErrParseSignature, kind, SourceTreasuryStatus, err))
		}
		sigs[i] = sig
	}

	tx, err := solana.NewTransactionFromSignedMessage(result.SerializedMessage, sigs)
	if err != nil {
		return p.failSubmit(ctx, key, kind, newError(ErrSolana, kind, SourceTreasuryStatus, err))
	}

	signature, err := p.RPC.SendTransaction(ctx, tx, rpc.SendTransactionOpts{})
	if err != nil {
		return p.failSubmit(ctx, key, kind, newError(ErrSend, kind, SourceTreasuryFailure, err))
	}

	address, err := p.resolveSuccessAddress(ctx, key, kind, signature)
	if err != nil {
		// The signature is real; per the compressed-mint boundary
		// behavior, submission still succeeds with an empty address.
		p.Logger.Warnw("success address resolution failed", "id", key.ID, "kind", kind, "error", err)
	}

	p.emit(ctx, key, Submitted{Key: key, Kind: kind, Signature: signature.String(), Address: address})
	return nil
}

func (p *Processor) failSubmit(ctx context.Context, key Key, kind Kind, err error) error {
	p.Logger.Warnw("submission failed", "id", key.ID, "kind", kind, "error", err)
	p.emit(ctx, key, Failed{Key: key, Kind: kind, Reason: ReasonSubmit, Error: err.Error()})
	return err
}

func (p *Processor) resolveSuccessAddress(ctx context.Context, key Key, kind Kind, signature solana.Signature) (string, error) {
	switch successShapes[kind] {
	case successShapeCreate:
		c, err := p.Store.GetCollection(ctx, key.ID)
		if err != nil {
			return "", err
		}
		return c.Mint, nil

	case successShapeMint:
		if m, err := p.Store.GetCollectionMint(ctx, key.ID); err == nil {
			return m.Mint, nil
		}
		leaf, err := p.Store.GetCompressionLeaf(ctx, key.ID)
		if err != nil {
			return "", err
		}
		return p.resolveCompressedMintAddress(ctx, kind, leaf, signature)

	default:
		return "", nil
	}
}

func (p *Processor) resolveCompressedMintAddress(ctx context.Context, kind Kind, leaf *core.CompressionLeaf, signature solana.Signature) (string, error) {
	nonce, err := p.extractNonce(ctx, signature)
	if err != nil {
		return "", newError(ErrAssetID, kind, SourceTreasurySuccess, err)
	}
	merkleTree, err := solana.PublicKeyFromBase58(leaf.MerkleTree)
	if err != nil {
		return "", newError(ErrParsePubkey, kind, SourceTreasurySuccess, err)
	}
	assetID, _, err := solana.FindBubblegumAssetID(merkleTree, nonce)
	if err != nil {
		return "", newError(ErrSolana, kind, SourceTreasurySuccess, err)
	}
	if err := p.Store.SetCompressionLeafAssetID(ctx, leaf.ID, assetID.String()); err != nil {
		return "", newError(ErrDB, kind, SourceTreasurySuccess, err)
	}
	return assetID.String(), nil
}

// extractNonce reads inner-instruction group 0, instruction index 3 —
// the account-compression CPI's noop changelog record — and returns
// the leaf index it carries.
func (p *Processor) extractNonce(ctx context.Context, signature solana.Signature) (uint64, error) {
	result, err := p.RPC.GetTransaction(ctx, signature.String(), rpc.CommitmentFinalized)
	if err != nil {
		return 0, err
	}
	if result == nil || result.Meta == nil {
		return 0, fmt.Errorf("no transaction meta")
	}
	for _, group := range result.Meta.InnerInstructions {
		if group.Index != 0 {
			continue
		}
		if len(group.Instructions) <= 3 {
			return 0, fmt.Errorf("no inner instruction at index 3")
		}
		raw, err := base58.Decode(group.Instructions[3].Data)
		if err != nil {
			return 0, fmt.Errorf("decode inner instruction data: %w", err)
		}
		event, err := bubblegum.DecodeAccountCompressionEventBytes(raw)
		if err != nil {
			return 0, err
		}
		if !event.IsChangeLog || event.ChangeLog == nil {
			return 0, fmt.Errorf("inner instruction is not a changelog event")
		}
		return event.ChangeLog.Nonce(), nil
	}
	return 0, fmt.Errorf("no inner instruction group 0")
}
