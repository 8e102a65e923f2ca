package translate

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

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

// retryDelay is the pause before the single retry.
var retryDelay = 500 * time.Millisecond

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// HTTPProvider calls a LibreTranslate-compatible /translate endpoint.
type HTTPProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewHTTPProvider creates an HTTPProvider for baseURL.
func NewHTTPProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *HTTPProvider {
	return &HTTPProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "translate"),
	}
}

// Translate translates text from source to target language.
// An empty translation yields domain.ErrNotFound.
func (p *HTTPProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: p.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("translate: encode request: %w", err)
	}

	p.log.DebugContext(ctx, "translate request",
		slog.String("text", text), slog.String("source", source), slog.String("target", target))

	resp, err := p.doWithRetry(ctx, payload, text)
	if err != nil {
		p.log.ErrorContext(ctx, "translate request failed", slog.String("text", text), slog.String("error", err.Error()))
		return "", fmt.Errorf("translate: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("translate: read body: %w", err)
	}

	var out translateResponse
	if resp.StatusCode != http.StatusOK {
		_ = json.Unmarshal(body, &out)
		return "", fmt.Errorf("translate: unexpected status %d: %s", resp.StatusCode, out.Error)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("translate: decode json: %w", err)
	}

	translated := strings.TrimSpace(out.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("translate %q: %w", text, domain.ErrNotFound)
	}
	return translated, nil
}

// doWithRetry posts the payload with a single retry on 5xx or network errors.
func (p *HTTPProvider) doWithRetry(ctx context.Context, payload []byte, text string) (*http.Response, error) {
	backoff := retry.WithMaxRetries(1, retry.NewConstant(retryDelay))

	var resp *http.Response
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		r, err := p.post(ctx, payload)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			p.log.WarnContext(ctx, "translate attempt failed",
				slog.String("text", text),
				slog.Int("attempt", attempt),
				slog.String("reason", "network error"),
			)
			return retry.RetryableError(err)
		}
		if r.StatusCode >= http.StatusInternalServerError {
			p.log.WarnContext(ctx, "translate attempt failed",
				slog.String("text", text),
				slog.Int("attempt", attempt),
				slog.String("reason", fmt.Sprintf("status %d", r.StatusCode)),
			)
			r.Body.Close()
			return retry.RetryableError(fmt.Errorf("upstream status %d", r.StatusCode))
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (p *HTTPProvider) post(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return p.httpClient.Do(req)
}
