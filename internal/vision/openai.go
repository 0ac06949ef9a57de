package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bistrodata/invoice-tracker/internal/common"
)

// OpenAIConfig for the OpenAI-compatible chat client.
type OpenAIConfig struct {
	APIKey      string // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string // default https://api.openai.com/v1
	Model       string // e.g. "gpt-4o-mini"
	Temperature float32
	Timeout     time.Duration // page-image payloads are large; keep this generous
}

// OpenAI implements Extractor over the chat/completions endpoint with page
// images inlined as data URLs.
type OpenAI struct {
	cfg    OpenAIConfig
	http   *http.Client
	logger *slog.Logger
}

func NewOpenAI(cfg OpenAIConfig, logger *slog.Logger) (*OpenAI, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAI{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}

func (c *OpenAI) ExtractInvoice(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()
	log := c.logger
	if sid := common.SessionIDFromContext(ctx); sid != "" {
		log = log.With("session_id", sid)
	}

	log.Info("llm.extract.start",
		"req_id", rid,
		"provider", "openai",
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"pages", len(req.Images),
		"filename", req.Filename,
	)

	if len(req.Images) == 0 {
		return InvoiceFields{}, nil, fmt.Errorf("no page images to submit")
	}

	content := []map[string]any{
		{"type": "text", "text": buildUserPrompt(req.Filename, len(req.Images))},
	}
	for _, img := range req.Images {
		content = append(content, map[string]any{
			"type":      "image_url",
			"image_url": map[string]any{"url": imageDataURL(img)},
		})
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": content},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(BuildInvoiceJSONSchema())},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return InvoiceFields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return InvoiceFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		log.Error("llm.extract.no_choices",
			"req_id", rid, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return InvoiceFields{}, raw, fmt.Errorf("no choices in openai response")
	}
	reply := strings.TrimSpace(cc.Choices[0].Message.Content)

	fields, stage, ok := ParseResponse(reply)
	if !ok {
		log.Error("llm.extract.unparseable",
			"req_id", rid, "reply_bytes", len(reply),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return InvoiceFields{}, []byte(reply), fmt.Errorf("unparseable model response")
	}
	fields.Stage = stage

	log.Info("llm.extract.ok",
		"req_id", rid,
		"vendor", fields.VendorName,
		"date", fields.InvoiceDate,
		"items", len(fields.Items),
		"repair_stage", string(stage),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, []byte(reply), nil
}

func (c *OpenAI) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("openai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
