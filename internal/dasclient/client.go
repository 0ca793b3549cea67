// Package dasclient is a Digital Asset API (DAS) client: a JSON-RPC
// client over HTTPS exposing getAsset, getAssetProof, and
// searchAssets, with a 15s per-request timeout.
package dasclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/pkg/errors"
)

const requestTimeout = 15 * time.Second

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  interface{}   `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("das rpc error %d: %s", e.Code, e.Message)
}

// call executes a single JSON-RPC request with exponential-backoff
// retry on transport-level failures.
func (c *Client) call(ctx context.Context, out interface{}, method string, params interface{}) error {
	op := func() (*rpcResponse, error) {
		reqBody, err := json.Marshal(rpcRequest{
			JSONRPC: "2.0",
			ID:      "1",
			Method:  method,
			Params:  params,
		})
		if err != nil {
			return nil, backoff.Permanent(errors.Wrap(err, "marshal das request"))
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
		if err != nil {
			return nil, backoff.Permanent(errors.Wrap(err, "build das request"))
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return nil, errors.Wrap(err, "das http request")
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "read das response")
		}

		var rpcResp rpcResponse
		if err := json.Unmarshal(body, &rpcResp); err != nil {
			return nil, backoff.Permanent(errors.Wrap(err, "decode das response"))
		}
		if rpcResp.Error != nil {
			return nil, backoff.Permanent(rpcResp.Error)
		}
		return &rpcResp, nil
	}

	result, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(10),
	)
	if err != nil {
		return errors.Wrapf(err, "das %s", method)
	}
	if out != nil {
		return json.Unmarshal(result.Result, out)
	}
	return nil
}
