package solana

import "github.com/mr-tron/base58"

// Hash is a 32-byte blockhash, as returned by getLatestBlockhash.
type Hash [32]byte

func HashFromBytes(in []byte) (out Hash) {
	copy(out[:], in)
	return
}

func HashFromBase58(in string) (out Hash, err error) {
	val, err := base58.Decode(in)
	if err != nil {
		return out, err
	}
	if len(val) != 32 {
		return out, errInvalidLength(len(val))
	}
	copy(out[:], val)
	return
}

func MustHashFromBase58(in string) Hash {
	out, err := HashFromBase58(in)
	if err != nil {
		panic(err)
	}
	return out
}

func (h Hash) String() string {
	return base58.Encode(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(data []byte) error {
	decoded, err := HashFromBase58(string(data))
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// Signature is a 64-byte ed25519 signature over a serialized message.
type Signature [64]byte

func SignatureFromBytes(in []byte) (out Signature) {
	copy(out[:], in)
	return
}

func SignatureFromBase58(in string) (out Signature, err error) {
	val, err := base58.Decode(in)
	if err != nil {
		return out, err
	}
	if len(val) != 64 {
		return out, errInvalidLength(len(val))
	}
	copy(out[:], val)
	return
}

func MustSignatureFromBase58(in string) Signature {
	out, err := SignatureFromBase58(in)
	if err != nil {
		panic(err)
	}
	return out
}

func (s Signature) String() string {
	return base58.Encode(s[:])
}

func (s Signature) IsZero() bool {
	return s == Signature{}
}

type errInvalidLength int

func (e errInvalidLength) Error() string {
	return "invalid base58 payload length"
}
