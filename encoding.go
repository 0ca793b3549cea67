package solana

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/mr-tron/base58"
)

// EncodingType is the account/transaction data encoding requested on
// an RPC call.
type EncodingType string

const (
	EncodingBase58     EncodingType = "base58"
	EncodingJSON       EncodingType = "json"
	EncodingJSONParsed EncodingType = "jsonParsed"
	EncodingBase64     EncodingType = "base64"
	EncodingBase64Zstd EncodingType = "base64+zstd"
)

// Base58 is a byte slice that marshals to/from a base58 JSON string,
// used for account data filters and parsed-instruction data.
type Base58 []byte

func (b Base58) String() string {
	return base58.Encode(b)
}

func (b Base58) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

func (b *Base58) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("invalid base58 JSON value: %q", data)
	}
	decoded, err := base58.Decode(string(data[1 : len(data)-1]))
	if err != nil {
		return fmt.Errorf("decode base58: %w", err)
	}
	*b = decoded
	return nil
}

// UnixTimeSeconds is a Unix timestamp in seconds, as returned for
// blockTime fields.
type UnixTimeSeconds int64

func (t UnixTimeSeconds) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// Data wraps account bytes returned with an explicit encoding tag,
// as in `["<data>", "<encoding>"]` for base58/base64/base64+zstd.
type Data struct {
	Content  []byte
	Encoding EncodingType
}

func (d Data) MarshalJSON() ([]byte, error) {
	var encoded string
	switch d.Encoding {
	case EncodingBase64, EncodingBase64Zstd:
		encoded = base64.StdEncoding.EncodeToString(d.Content)
	default:
		encoded = base58.Encode(d.Content)
	}
	return []byte(fmt.Sprintf(`["%s","%s"]`, encoded, d.Encoding)), nil
}

func (d *Data) UnmarshalJSON(data []byte) error {
	var tuple [2]string
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("decode data tuple: %w", err)
	}
	d.Encoding = EncodingType(tuple[1])
	switch d.Encoding {
	case EncodingBase64, EncodingBase64Zstd:
		decoded, err := base64.StdEncoding.DecodeString(tuple[0])
		if err != nil {
			return fmt.Errorf("decode base64 data: %w", err)
		}
		d.Content = decoded
	default:
		decoded, err := base58.Decode(tuple[0])
		if err != nil {
			return fmt.Errorf("decode base58 data: %w", err)
		}
		d.Content = decoded
	}
	return nil
}
