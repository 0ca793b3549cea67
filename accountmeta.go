package solana

// AccountMeta describes one account referenced by an instruction, and
// whether the runtime must treat it as a signer and/or writable.
type AccountMeta struct {
	PublicKey  PublicKey
	IsSigner   bool
	IsWritable bool
}

// Meta creates an AccountMeta for the given public key, read-only and
// not a signer by default; chain .WRITE() / .SIGNER() to adjust.
func Meta(pubKey PublicKey) *AccountMeta {
	return &AccountMeta{PublicKey: pubKey}
}

func (meta *AccountMeta) WRITE() *AccountMeta {
	meta.IsWritable = true
	return meta
}

func (meta *AccountMeta) SIGNER() *AccountMeta {
	meta.IsSigner = true
	return meta
}

// AccountMetaSlice is an ordered list of account metas, as consumed by
// instruction builders (see programs/token.Burn for the pattern this
// mirrors).
type AccountMetaSlice []*AccountMeta

func (slice *AccountMetaSlice) Append(account *AccountMeta) {
	*slice = append(*slice, account)
}

func (slice AccountMetaSlice) Get(index int) *AccountMeta {
	if index >= len(slice) {
		return nil
	}
	return slice[index]
}

// AccountsSettable is implemented by decoded instructions that need
// their account list re-attached after being parsed from wire bytes.
type AccountsSettable interface {
	SetAccounts(accounts []*AccountMeta) error
}

// GetAccounts returns the non-nil metas in the slice, in order. An
// instruction struct that embeds AccountMetaSlice anonymously gets
// this promoted for free, satisfying AccountsGettable.
func (slice AccountMetaSlice) GetAccounts() []*AccountMeta {
	out := make([]*AccountMeta, 0, len(slice))
	for _, m := range slice {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// AccountsGettable is implemented by any instruction whose accounts
// can be read back as a flat list, used by the generic Instruction
// wrapper's Accounts() method.
type AccountsGettable interface {
	GetAccounts() []*AccountMeta
}
