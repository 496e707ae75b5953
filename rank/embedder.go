package rank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Embedder converts text to fixed-size embedding vectors.
type Embedder interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns embeddings for multiple texts.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the model name.
	Model() string
}

// EmbedderConfig configures the HTTP embedding client.
type EmbedderConfig struct {
	// Endpoint is the base URL of the embedding server
	// (e.g. "http://localhost:11434").
	Endpoint string `json:"endpoint"`

	// Model is the model name sent with each request.
	Model string `json:"model"`

	// BatchSize is the maximum number of texts per HTTP request.
	// Default: 32.
	BatchSize int `json:"batch_size"`

	// Timeout per HTTP request. Default: 60s.
	Timeout time.Duration `json:"-"`

	// Logger for debug messages. Defaults to slog.Default().
	Logger *slog.Logger `json:"-"`
}

func (c *EmbedderConfig) defaults() {
	if c.BatchSize <= 0 {
		c.BatchSize = 32
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// HTTPEmbedder implements Embedder over the OpenAI /v1/embeddings wire
// format.
type HTTPEmbedder struct {
	endpoint  string
	model     string
	batchSize int
	client    *http.Client
	logger    *slog.Logger
}

// NewHTTPEmbedder creates an embedding client from config. A missing
// endpoint or model is a configuration error: the relevance model is a
// fixed external collaborator and there is no fallback.
func NewHTTPEmbedder(cfg EmbedderConfig) (*HTTPEmbedder, error) {
	cfg.defaults()
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("embedding endpoint not configured")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("embedding model not configured")
	}
	return &HTTPEmbedder{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		model:     cfg.Model,
		batchSize: cfg.BatchSize,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    cfg.Logger,
	}, nil
}

// Model returns the model name.
func (e *HTTPEmbedder) Model() string {
	return e.model
}

// Embed returns the embedding vector for a single text.
func (e *HTTPEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch returns embeddings for multiple texts, splitting the work
// into requests of at most BatchSize inputs.
func (e *HTTPEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	result := make([][]float32, len(texts))
	for start := 0; start < len(texts); start += e.batchSize {
		end := start + e.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		vecs, err := e.callAPI(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("batch [%d:%d]: %w", start, end, err)
		}
		copy(result[start:end], vecs)
	}
	return result, nil
}

// embedRequest is the JSON body sent to /v1/embeddings.
type embedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// embedResponse is the JSON response from /v1/embeddings.
type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
}

func (e *HTTPEmbedder) callAPI(ctx context.Context, texts []string) ([][]float32, error) {
	body, err := json.Marshal(embedRequest{Model: e.model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := e.endpoint + "/v1/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP POST %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, string(respBody))
	}

	var result embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(result.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings from %s, got %d", len(texts), url, len(result.Data))
	}

	vecs := make([][]float32, len(texts))
	for _, item := range result.Data {
		if item.Index < 0 || item.Index >= len(vecs) {
			return nil, fmt.Errorf("embedding index %d out of range", item.Index)
		}
		vecs[item.Index] = item.Embedding
	}
	e.logger.Debug("embedded batch", "count", len(texts), "model", e.model)
	return vecs, nil
}
