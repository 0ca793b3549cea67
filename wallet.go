package solana

// Wallet pairs a freshly generated keypair, used throughout the
// assembly backends for ephemeral mint keys that sign locally before
// the message is handed to the treasury for the remaining signatures.
type Wallet struct {
	PrivateKey PrivateKey
	PublicKey  PublicKey
}

// NewWallet generates a new random ed25519 keypair.
func NewWallet() *Wallet {
	privateKey, err := NewRandomPrivateKey()
	if err != nil {
		panic(err)
	}
	return &Wallet{
		PrivateKey: privateKey,
		PublicKey:  privateKey.PublicKey(),
	}
}
