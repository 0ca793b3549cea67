package solana

import (
	"bytes"
	"fmt"
)

// Transaction is a Message plus one signature slot per required
// signer. The assembly backends in this repo never produce a fully
// signed Transaction themselves — the treasury service supplies the
// missing signatures out of band — but the submit path
// reconstitutes one from the co-signed wire bytes before sending it
// to the cluster.
type Transaction struct {
	Signatures []Signature
	Message    *Message
}

type transactionOptions struct {
	payer PublicKey
}

// TransactionOption configures NewTransaction.
type TransactionOption func(*transactionOptions)

// TransactionPayer sets the fee payer / first required signer.
func TransactionPayer(payer PublicKey) TransactionOption {
	return func(o *transactionOptions) {
		o.payer = payer
	}
}

// NewTransaction compiles instructions into a Message against
// recentBlockhash and returns a Transaction with one empty signature
// slot per required signer, ready for local or remote signing.
func NewTransaction(instructions []Instruction, recentBlockhash Hash, opts...TransactionOption) (*Transaction, error) {
	var options transactionOptions
	for _, opt := range opts {
		opt(&options)
	}

	message, err := NewMessage(instructions, options.payer, recentBlockhash)
	if err != nil {
		return nil, fmt.Errorf("compile message: %w", err)
	}

	return &Transaction{
		Signatures: make([]Signature, message.Header.NumRequiredSignatures),
		Message:    message,
	}, nil
}

// NewTransactionFromSignedMessage reconstructs a Transaction from the
// exact bytes an assembly backend serialized plus the positional
// signatures collected for each required signer. signatures must be in the same order as
// Message.Signers().
func NewTransactionFromSignedMessage(serializedMessage []byte, signatures []Signature) (*Transaction, error) {
	message, err := UnmarshalMessage(serializedMessage)
	if err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}

	if len(signatures) != int(message.Header.NumRequiredSignatures) {
		return nil, fmt.Errorf("expected %d signatures, got %d", message.Header.NumRequiredSignatures, len(signatures))
	}

	return &Transaction{
		Signatures: signatures,
		Message:    message,
	}, nil
}

// MarshalBinary serializes the transaction to the wire format
// (signatures followed by the message bytes).
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	messageBytes, err := tx.Message.MarshalBinary()
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	writeCompactArrayLen(buf, len(tx.Signatures))
	for _, sig := range tx.Signatures {
		buf.Write(sig[:])
	}
	buf.Write(messageBytes)

	return buf.Bytes(), nil
}

// UnmarshalMessage parses the wire format produced by
// Message.MarshalBinary. It is the inverse used on the submit path,
// where the treasury hands back the same serialized_message bytes the
// backend originally produced.
func UnmarshalMessage(data []byte) (*Message, error) {
	r := bytes.NewReader(data)

	header := MessageHeader{}
	for _, field := range []*uint8{&header.NumRequiredSignatures, &header.NumReadonlySignedAccounts, &header.NumReadonlyUnsignedAccounts} {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		*field = b
	}

	numKeys, err := readCompactArrayLen(r)
	if err != nil {
		return nil, fmt.Errorf("read account key count: %w", err)
	}
	accountKeys := make([]PublicKey, numKeys)
	for i := range accountKeys {
		var key PublicKey
		if _, err := r.Read(key[:]); err != nil {
			return nil, fmt.Errorf("read account key %d: %w", i, err)
		}
		accountKeys[i] = key
	}

	var blockhash Hash
	if _, err := r.Read(blockhash[:]); err != nil {
		return nil, fmt.Errorf("read blockhash: %w", err)
	}

	numInstructions, err := readCompactArrayLen(r)
	if err != nil {
		return nil, fmt.Errorf("read instruction count: %w", err)
	}
	instructions := make([]CompiledInstruction, numInstructions)
	for i := range instructions {
		programIdx, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read instruction %d program index: %w", i, err)
		}

		numAccounts, err := readCompactArrayLen(r)
		if err != nil {
			return nil, fmt.Errorf("read instruction %d account count: %w", i, err)
		}
		accounts := make([]uint16, numAccounts)
		for j := range accounts {
			b, err := r.ReadByte()
			if err != nil {
				return nil, fmt.Errorf("read instruction %d account %d: %w", i, j, err)
			}
			accounts[j] = uint16(b)
		}

		dataLen, err := readCompactArrayLen(r)
		if err != nil {
			return nil, fmt.Errorf("read instruction %d data length: %w", i, err)
		}
		instrData := make([]byte, dataLen)
		if _, err := r.Read(instrData); err != nil {
			return nil, fmt.Errorf("read instruction %d data: %w", i, err)
		}

		instructions[i] = CompiledInstruction{
			ProgramIDIndex: uint16(programIdx),
			Accounts:       accounts,
			Data:           instrData,
		}
	}

	return &Message{
		Header:          header,
		AccountKeys:     accountKeys,
		RecentBlockhash: blockhash,
		Instructions:    instructions,
	}, nil
}

func readCompactArrayLen(r *bytes.Reader) (int, error) {
	var out int
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		out |= int(b&0x7f) << shift
		if b&0x80 == 0 {
			return out, nil
		}
		shift += 7
	}
}
