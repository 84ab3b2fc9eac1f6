package monitor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/neoinsight7000-backend/pkg/safe"
)

const defaultRequestTimeout = 10 * time.Second

// RPCClient speaks JSON-RPC 2.0 to peer nodes over HTTP.
type RPCClient struct {
	httpClient *http.Client
	metrics    RPCMetrics
}

// NewRPCClient builds a JSON-RPC client with the given metrics collector. A
// nil httpClient falls back to one with a default timeout.
func NewRPCClient(httpClient *http.Client, metrics RPCMetrics) *RPCClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &RPCClient{
		httpClient: httpClient,
		metrics:    metrics,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// BlockCount returns the current block count reported by the node at url.
func (c *RPCClient) BlockCount(ctx context.Context, url string) (count uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block_count", url, err, started)
	}()

	var raw int64
	if err = c.call(ctx, url, "getblockcount", &raw); err != nil {
		return 0, err
	}
	count, err = safe.Uint64(raw)
	if err != nil {
		return 0, fmt.Errorf("node %s block count: %w", url, err)
	}
	return count, nil
}

func (c *RPCClient) call(ctx context.Context, url, method string, result any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  []any{},
		ID:      1,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s on %s: %w", method, url, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call %s on %s: unexpected status %d", method, url, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decode %s response from %s: %w", method, url, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("node %s returned rpc error %d: %s", url, rpcResp.Error.Code, rpcResp.Error.Message)
	}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("decode %s result from %s: %w", method, url, err)
	}
	return nil
}
