package vision

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/internal/common"
)

var pngStub = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

var _ = Describe("OpenAI", func() {
	var (
		server   *httptest.Server
		captured map[string]any
		reply    string
		status   int
	)

	BeforeEach(func() {
		captured = nil
		reply = chatReply("```json\n" + cleanReply + "\n```")
		status = http.StatusOK
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			var m map[string]any
			Expect(json.Unmarshal(body, &m)).To(Succeed())
			captured = m
			captured["_auth"] = r.Header.Get("Authorization")
			captured["_path"] = r.URL.Path
			w.WriteHeader(status)
			io.WriteString(w, reply)
		}))
		DeferCleanup(server.Close)
	})

	newClient := func() *OpenAI {
		c, err := NewOpenAI(OpenAIConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
			Model:   "gpt-4o-mini",
			Timeout: 5 * time.Second,
		}, discardLogger())
		Expect(err).NotTo(HaveOccurred())
		return c
	}

	It("requires an API key", func() {
		GinkgoT().Setenv("OPENAI_API_KEY", "")
		_, err := NewOpenAI(OpenAIConfig{}, discardLogger())
		Expect(err).To(MatchError(ContainSubstring("api key")))
	})

	It("refuses a request with no page images", func() {
		_, _, err := newClient().ExtractInvoice(context.Background(), ExtractRequest{Filename: "a.pdf"})
		Expect(err).To(MatchError(ContainSubstring("no page images")))
	})

	It("submits pages as data URLs and parses the fenced reply", func() {
		fields, raw, err := newClient().ExtractInvoice(context.Background(), ExtractRequest{
			Images:   [][]byte{pngStub, pngStub},
			Filename: "maruyata_oct.pdf",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(fields.VendorName).To(Equal("株式会社 丸弥太"))
		Expect(fields.Items).To(HaveLen(2))
		Expect(string(raw)).To(ContainSubstring("vendor_name"))

		Expect(captured["_path"]).To(Equal("/chat/completions"))
		Expect(captured["_auth"]).To(Equal("Bearer test-key"))
		Expect(captured["model"]).To(Equal("gpt-4o-mini"))

		rf := captured["response_format"].(map[string]any)
		Expect(rf["type"]).To(Equal("json_object"))

		messages := captured["messages"].([]any)
		Expect(messages).To(HaveLen(3))
		user := messages[1].(map[string]any)
		Expect(user["role"]).To(Equal("user"))
		parts := user["content"].([]any)
		// one text part, then one image part per page
		Expect(parts).To(HaveLen(3))
		img := parts[1].(map[string]any)["image_url"].(map[string]any)
		Expect(img["url"].(string)).To(HavePrefix("data:image/png;base64,"))

		schemaMsg := messages[2].(map[string]any)["content"].(string)
		Expect(schemaMsg).To(ContainSubstring("item_name"))
	})

	It("surfaces a non-2xx response as an error with the body", func() {
		status = http.StatusTooManyRequests
		reply = `{"error": {"message": "rate limited"}}`
		_, _, err := newClient().ExtractInvoice(context.Background(), ExtractRequest{
			Images: [][]byte{pngStub}, Filename: "a.pdf",
		})
		Expect(err).To(MatchError(ContainSubstring("rate limited")))
	})

	It("returns the raw reply when every repair stage fails", func() {
		reply = chatReply("the scan is illegible")
		_, raw, err := newClient().ExtractInvoice(context.Background(), ExtractRequest{
			Images: [][]byte{pngStub}, Filename: "a.pdf",
		})
		Expect(err).To(MatchError(ContainSubstring("unparseable")))
		Expect(string(raw)).To(Equal("the scan is illegible"))
	})

	It("falls back to object recovery on a truncated reply", func() {
		reply = chatReply(truncatedReply)
		fields, _, err := newClient().ExtractInvoice(context.Background(), ExtractRequest{
			Images: [][]byte{pngStub}, Filename: "a.pdf",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(fields.Items).To(HaveLen(3))
	})
})

var _ = Describe("Provider selection", func() {
	It("rejects an unknown provider name", func() {
		_, err := New(context.Background(), common.VisionConfig{Provider: "paligemma", OpenAIKey: "k"}, discardLogger())
		Expect(err).To(MatchError(ContainSubstring("unknown vision provider")))
	})

	It("builds the openai client by default", func() {
		ex, err := New(context.Background(), common.VisionConfig{OpenAIKey: "k"}, discardLogger())
		Expect(err).NotTo(HaveOccurred())
		if _, ok := ex.(*OpenAI); !ok {
			Fail("expected an OpenAI extractor")
		}
	})

	It("builds the gemini client when asked", func() {
		ex, err := New(context.Background(), common.VisionConfig{Provider: "gemini", GeminiKey: "k"}, discardLogger())
		Expect(err).NotTo(HaveOccurred())
		if _, ok := ex.(*Gemini); !ok {
			Fail("expected a Gemini extractor")
		}
	})
})

var _ = Describe("imageFormat", func() {
	It("sniffs jpeg", func() {
		jpg := append([]byte{0xff, 0xd8, 0xff, 0xe0}, make([]byte, 8)...)
		Expect(imageFormat(jpg)).To(Equal("jpeg"))
	})

	It("defaults to png", func() {
		Expect(imageFormat(pngStub)).To(Equal("png"))
	})
})
