package vision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/bistrodata/invoice-tracker/internal/common"
)

// GeminiConfig for the Gemini client.
type GeminiConfig struct {
	APIKey  string
	Model   string // default "gemini-2.5-pro"
	Timeout time.Duration
}

// Gemini implements Extractor using Google Gemini.
type Gemini struct {
	cfg    GeminiConfig
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

func NewGemini(ctx context.Context, cfg GeminiConfig, logger *slog.Logger) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-pro"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{
		cfg:    cfg,
		client: client,
		model:  client.GenerativeModel(cfg.Model),
		logger: logger,
	}, nil
}

func (c *Gemini) ExtractInvoice(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()
	log := c.logger
	if sid := common.SessionIDFromContext(ctx); sid != "" {
		log = log.With("session_id", sid)
	}

	log.Info("llm.extract.start",
		"req_id", rid,
		"provider", "gemini",
		"model", c.cfg.Model,
		"pages", len(req.Images),
		"filename", req.Filename,
	)

	if len(req.Images) == 0 {
		return InvoiceFields{}, nil, fmt.Errorf("no page images to submit")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var parts []genai.Part
	for _, img := range req.Images {
		parts = append(parts, genai.ImageData(imageFormat(img), img))
	}
	parts = append(parts, genai.Text(systemPrompt+"\n\n"+buildUserPrompt(req.Filename, len(req.Images))))

	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return InvoiceFields{}, nil, fmt.Errorf("generating content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Error("llm.extract.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return InvoiceFields{}, nil, fmt.Errorf("no response from gemini")
	}

	var replyBuilder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			replyBuilder.WriteString(string(text))
		}
	}
	reply := strings.TrimSpace(replyBuilder.String())

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

// Close closes the underlying client.
func (c *Gemini) Close() error {
	return c.client.Close()
}
