package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

// Client is a minimal JSON-RPC 2.0 client for the Solana cluster
// endpoints this worker needs: getLatestBlockhash,
// getMinimumBalanceForRentExemption, sendTransaction, getAccountInfo,
// getTransaction. It is cloneable and safe to share across goroutines.
type Client struct {
	endpoint   string
	httpClient *http.Client
	rpcClient  *jsonRPCClient
}

// New creates a Client pointed at the given JSON-RPC HTTPS endpoint.
func New(endpoint string) *Client {
	httpClient := &http.Client{}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		rpcClient:  &jsonRPCClient{endpoint: endpoint, httpClient: httpClient},
	}
}

// jsonRPCClient is a small, dependency-free JSON-RPC 2.0 transport.
// The upstream solana-go client builds this on top of
// github.com/gorilla/rpc's json2 codec; this worker only ever talks to
// a fixed, small set of methods, so the codec is reimplemented
// directly over net/http rather than carrying the gorilla/rpc
// dependency for a handful of call sites.
type jsonRPCClient struct {
	endpoint   string
	httpClient *http.Client
	idCounter  uint64
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// CallFor performs a JSON-RPC call and decodes the result into out.
func (c *jsonRPCClient) CallFor(ctx context.Context, out interface{}, method string, params...interface{}) error {
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      atomic.AddUint64(&c.idCounter, 1),
		Method:  method,
		Params:  params,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(rpcResp.Result, out)
}
