package solana

import jsoniter "github.com/json-iterator/go"

// json is the package-wide codec, matching the speed/compat tradeoffs
// the rest of the client stack (rpc, programs/*) already assumes.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
