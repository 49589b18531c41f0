package textgen

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

var ErrMissingTextGenBaseURL = errors.New("missing TEXTGEN_BASE_URL")

const completionsPath = "/v1/chat/completions"

// Client calls an OpenAI-compatible chat-completions endpoint and returns the
// raw text of the first choice. Callers treat that text as untrusted input:
// the assistant use case parses it into a validated plan and nothing else.
type Client struct {
	httpClient *http.Client
	cfg        config.TextGenConfig
	log        logger.Logger
}

var _ interfaces.ITextGenerator = (*Client)(nil)

func NewClient(cfg config.TextGenConfig, log logger.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingTextGenBaseURL
	}
	return &Client{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
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

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("text generation call failed",
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(respBody)),
		)
		return "", fmt.Errorf("text generation returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("text generation returned unexpected body: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("text generation returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
