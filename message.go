package solana

import (
	"bytes"
	"fmt"
)

// MessageHeader describes how many of the leading account keys require
// a signature, and how many of the signed/unsigned accounts are
// read-only. This mirrors the Solana wire format exactly; assembly
// backends never construct it by hand.
type MessageHeader struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
}

// Message is the unsigned payload of a transaction: accounts,
// instructions (compiled to account-index form) and a recent
// blockhash. Its serialized form is exactly what gets signed, and
// exactly the bytes the treasury service is handed over the wire.
type Message struct {
	Header          MessageHeader
	AccountKeys     []PublicKey
	RecentBlockhash Hash
	Instructions    []CompiledInstruction
}

// NewMessage compiles a list of instructions into a Message with payer
// as the fee-payer and first required signer, following the same
// account-ordering rules solana-go/solana-sdk use: payer, then other
// signers, then writable non-signers, then read-only non-signers,
// de-duplicated. Each instruction's program id joins the read-only
// non-signers at the point it is first referenced, in first-seen order
// with the other read-only keys.
func NewMessage(instructions []Instruction, payer PublicKey, recentBlockhash Hash) (*Message, error) {
	if payer.IsZero() {
		return nil, fmt.Errorf("payer must be set")
	}

	type slot struct {
		key        PublicKey
		isSigner   bool
		isWritable bool
	}

	order := []PublicKey{payer}
	index := map[PublicKey]*slot{
		payer: {key: payer, isSigner: true, isWritable: true},
	}

	upsert := func(key PublicKey, isSigner, isWritable bool) {
		if s, ok := index[key]; ok {
			s.isSigner = s.isSigner || isSigner
			s.isWritable = s.isWritable || isWritable
			return
		}
		index[key] = &slot{key: key, isSigner: isSigner, isWritable: isWritable}
		order = append(order, key)
	}

	for _, instr := range instructions {
		for _, meta := range instr.Accounts() {
			upsert(meta.PublicKey, meta.IsSigner, meta.IsWritable)
		}
		upsert(instr.ProgramID(), false, false)
	}

	signersWritable := make([]PublicKey, 0, len(order))
	signersReadonly := make([]PublicKey, 0, len(order))
	writable := make([]PublicKey, 0, len(order))
	readonly := make([]PublicKey, 0, len(order))

	for _, key := range order {
		if key == payer {
			continue
		}
		s := index[key]
		switch {
		case s.isSigner && s.isWritable:
			signersWritable = append(signersWritable, key)
		case s.isSigner:
			signersReadonly = append(signersReadonly, key)
		case s.isWritable:
			writable = append(writable, key)
		default:
			readonly = append(readonly, key)
		}
	}

	accountKeys := make([]PublicKey, 0, len(order))
	accountKeys = append(accountKeys, payer)
	accountKeys = append(accountKeys, signersWritable...)
	accountKeys = append(accountKeys, signersReadonly...)
	accountKeys = append(accountKeys, writable...)
	accountKeys = append(accountKeys, readonly...)

	keyIndex := make(map[PublicKey]uint16, len(accountKeys))
	for i, key := range accountKeys {
		keyIndex[key] = uint16(i)
	}

	compiled := make([]CompiledInstruction, 0, len(instructions))
	for _, instr := range instructions {
		data, err := instr.Data()
		if err != nil {
			return nil, fmt.Errorf("encode instruction data: %w", err)
		}
		accountIndexes := make([]uint16, 0, len(instr.Accounts()))
		for _, meta := range instr.Accounts() {
			accountIndexes = append(accountIndexes, keyIndex[meta.PublicKey])
		}
		compiled = append(compiled, CompiledInstruction{
			ProgramIDIndex: keyIndex[instr.ProgramID()],
			Accounts:       accountIndexes,
			Data:           data,
		})
	}

	numSigners := uint8(1 + len(signersWritable) + len(signersReadonly))

	return &Message{
		Header: MessageHeader{
			NumRequiredSignatures:       numSigners,
			NumReadonlySignedAccounts:   uint8(len(signersReadonly)),
			NumReadonlyUnsignedAccounts: uint8(len(readonly)),
		},
		AccountKeys:     accountKeys,
		RecentBlockhash: recentBlockhash,
		Instructions:    compiled,
	}, nil
}

// Signers returns the public keys of every account the message
// requires a signature from, in positional order — the same order
// signatures_or_signers_public_keys must follow.
func (m *Message) Signers() []PublicKey {
	return append([]PublicKey{}, m.AccountKeys[:m.Header.NumRequiredSignatures]...)
}

// MarshalBinary serializes the message to the exact bytes that are
// signed and transmitted. UnmarshalMessage (transaction.go) is its
// inverse, used when previously serialized message bytes are read back.
func (m *Message) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)

	buf.WriteByte(m.Header.NumRequiredSignatures)
	buf.WriteByte(m.Header.NumReadonlySignedAccounts)
	buf.WriteByte(m.Header.NumReadonlyUnsignedAccounts)

	writeCompactArrayLen(buf, len(m.AccountKeys))
	for _, key := range m.AccountKeys {
		buf.Write(key[:])
	}

	buf.Write(m.RecentBlockhash[:])

	writeCompactArrayLen(buf, len(m.Instructions))
	for _, instr := range m.Instructions {
		buf.WriteByte(byte(instr.ProgramIDIndex))
		writeCompactArrayLen(buf, len(instr.Accounts))
		for _, idx := range instr.Accounts {
			buf.WriteByte(byte(idx))
		}
		writeCompactArrayLen(buf, len(instr.Data))
		buf.Write(instr.Data)
	}

	return buf.Bytes(), nil
}

// writeCompactArrayLen writes a length prefix using Solana's
// "compact-u16" (shortvec) varint encoding.
func writeCompactArrayLen(buf *bytes.Buffer, n int) {
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n == 0 {
			buf.WriteByte(b)
			return
		}
		buf.WriteByte(b | 0x80)
	}
}

