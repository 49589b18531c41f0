package storeproc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"sublime_ops/internal/config"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"
)

var ErrMissingRPCBaseURL = errors.New("missing STORE_RPC_BASE_URL")

const processSalePath = "/rest/v1/rpc/process_sale"

// Client invokes the store-side process_sale procedure over the managed
// database's RPC endpoint. The procedure validates stock, inserts the order
// row and decrements inventory in one server-side transaction; the client only
// relays its structured result.
type Client struct {
	httpClient *http.Client
	cfg        config.SaleProcedureConfig
	log        logger.Logger
}

var _ interfaces.ISaleProcedure = (*Client)(nil)

func NewClient(cfg config.SaleProcedureConfig, log logger.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingRPCBaseURL
	}
	return &Client{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}, nil
}

type processSaleParams struct {
	Phone     string `json:"p_phone"`
	ProductID string `json:"p_product_id"`
	Qty       int    `json:"p_qty"`
	Total     int64  `json:"p_total"`
	Source    string `json:"p_source"`
}

func (c *Client) ProcessSale(ctx context.Context, req interfaces.SaleRequest) (interfaces.SaleResult, error) {
	body, err := json.Marshal(processSaleParams{
		Phone:     req.Phone,
		ProductID: req.ProductID,
		Qty:       req.Quantity,
		Total:     req.TotalCFA,
		Source:    req.Source,
	})
	if err != nil {
		return interfaces.SaleResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+processSalePath, bytes.NewReader(body))
	if err != nil {
		return interfaces.SaleResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("apikey", c.cfg.APIKey)
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return interfaces.SaleResult{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return interfaces.SaleResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("process_sale call failed",
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(respBody)),
		)
		return interfaces.SaleResult{}, fmt.Errorf("process_sale returned status %d", resp.StatusCode)
	}

	var result interfaces.SaleResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return interfaces.SaleResult{}, fmt.Errorf("process_sale returned unexpected body: %w", err)
	}
	return result, nil
}
