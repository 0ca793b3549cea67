package solana

// Instruction is satisfied by every program instruction builder in
// programs/*; it is the unit composed into a Message.
type Instruction interface {
	ProgramID() PublicKey
	Accounts() []*AccountMeta
	Data() ([]byte, error)
}

// CompiledInstruction is the wire-format instruction: indices into the
// message's account-key table rather than raw public keys.
type CompiledInstruction struct {
	ProgramIDIndex uint16
	Accounts       []uint16
	Data           []byte
}

type instructionDecoder func(accounts []*AccountMeta, data []byte) (interface{}, error)

var instructionDecoderRegistry = map[PublicKey]instructionDecoder{}

// RegisterInstructionDecoder lets a programs/* package register itself
// so generic transaction parsing (e.g. the indexer) can decode
// instructions addressed to it without an explicit type switch.
func RegisterInstructionDecoder(programID PublicKey, decoder instructionDecoder) {
	instructionDecoderRegistry[programID] = decoder
}

// DecodeInstruction looks up the registered decoder for programID and
// runs it; it returns (nil, false) if the program has none.
func DecodeInstruction(programID PublicKey, accounts []*AccountMeta, data []byte) (interface{}, bool, error) {
	decoder, ok := instructionDecoderRegistry[programID]
	if !ok {
		return nil, false, nil
	}
	out, err := decoder(accounts, data)
	return out, true, err
}
