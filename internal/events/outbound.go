package events

import "github.com/holaplex/hub-nfts-solana-go/internal/assembly"

// SolanaPendingTransaction is the wire payload of SigningRequested:
// a positional, base58-encoded signatures-or-signers discipline for
// the treasury service.
type SolanaPendingTransaction struct {
	SerializedMessage               []byte
	SignaturesOrSignersPublicKeys   []string // base58 signature or base58 public key, positional
}

// NewSolanaPendingTransaction renders a PendingTransaction into its
// wire form: a pre-signed slot becomes the base58 signature, an
// unsigned slot becomes the base58 public key the treasury must sign
// for.
func NewSolanaPendingTransaction(pending *assembly.PendingTransaction) *SolanaPendingTransaction {
	out := &SolanaPendingTransaction{
		SerializedMessage:             pending.SerializedMessage,
		SignaturesOrSignersPublicKeys: make([]string, len(pending.SignaturesOrSigners)),
	}
	for i, slot := range pending.SignaturesOrSigners {
		if slot.IsPreSigned() {
			out.SignaturesOrSignersPublicKeys[i] = slot.Signature.String()
		} else {
			out.SignaturesOrSignersPublicKeys[i] = slot.PublicKey.String()
		}
	}
	return out
}

// TransactionStatus is the treasury's verdict on a pending transaction.
type TransactionStatus int

const (
	TransactionPending TransactionStatus = iota
	TransactionOk
	TransactionFailed
)

// SolanaTransactionResult is the upstream signed-topic message: the
// treasury hands back the same serialized message plus one base58
// signature per required signer, in message order.
type SolanaTransactionResult struct {
	Status                  TransactionStatus
	SerializedMessage        []byte
	SignedMessageSignatures  []string
}

// FailureReason names which lifecycle phase produced a Failed event.
type FailureReason string

const (
	ReasonAssemble FailureReason = "Assemble"
	ReasonSign     FailureReason = "Sign"
	ReasonSubmit   FailureReason = "Submit"
)

// SigningRequested is emitted once assembly succeeds: the treasury is
// being asked to countersign pending.
type SigningRequested struct {
	Key     Key
	Kind    Kind
	Pending *SolanaPendingTransaction
}

func (SigningRequested) EventKind() string { return "SigningRequested" }

// Submitted is emitted once a signed transaction lands on-chain.
// Address is populated per the kind→success-contents table; it is
// empty for kinds whose success shape is signature-only.
type Submitted struct {
	Key       Key
	Kind      Kind
	Signature string
	Address   string
}

func (Submitted) EventKind() string { return "Submitted" }

// Failed is emitted whenever the lifecycle terminates early.
type Failed struct {
	Key    Key
	Kind   Kind
	Reason FailureReason
	Error  string
}

func (Failed) EventKind() string { return "Failed" }

// ImportedExternalCollection is emitted once per importer run.
type ImportedExternalCollection struct {
	Key        Key
	Collection string
}

func (ImportedExternalCollection) EventKind() string { return "ImportedExternalCollection" }

// ImportedExternalMint is emitted per non-burned asset the importer
// inserts.
type ImportedExternalMint struct {
	Key        Key
	Collection string
	Mint       string
}

func (ImportedExternalMint) EventKind() string { return "ImportedExternalMint" }

// MintOwnershipUpdate is emitted by the indexer on every observed
// ownership change.
type MintOwnershipUpdate struct {
	MintAddress string
	Sender      string
	Recipient   string
	TxSignature string
}

func (MintOwnershipUpdate) EventKind() string { return "MintOwnershipUpdate" }
