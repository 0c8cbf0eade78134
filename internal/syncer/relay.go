package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	// MinSendInterval throttles relay sends after state changes.
	MinSendInterval = 10 * time.Second
	// AutoSyncInterval is the periodic background sync cadence.
	AutoSyncInterval = 30 * time.Second

	defaultAPIBase = "https://api.telegram.org"
	requestTimeout = 15 * time.Second
)

// RelayConfig holds the companion bot credentials.
type RelayConfig struct {
	BotToken string
	ChatID   string
	APIBase  string // overridable for tests
}

// LoadRelayConfig reads MISBAHA_BOT_TOKEN and MISBAHA_CHAT_ID from the
// environment, falling back to a .env file next to the store. Returns
// ok=false when the relay is not configured; that is not an error.
func LoadRelayConfig(storePath string) (RelayConfig, bool) {
	if os.Getenv("MISBAHA_BOT_TOKEN") == "" {
		envPath := filepath.Join(filepath.Dir(storePath), ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", envPath, err)
			}
		}
	}

	cfg := RelayConfig{
		BotToken: os.Getenv("MISBAHA_BOT_TOKEN"),
		ChatID:   os.Getenv("MISBAHA_CHAT_ID"),
		APIBase:  defaultAPIBase,
	}
	if cfg.BotToken == "" || cfg.ChatID == "" {
		return RelayConfig{}, false
	}
	return cfg, true
}

// Relay posts payload snapshots to the companion Telegram bot. The
// bot stores the JSON opaquely and answers /stats queries with a
// human-readable projection of it; nothing here depends on the bot
// beyond "accepts this JSON".
type Relay struct {
	cfg      RelayConfig
	client   *http.Client
	lastSend time.Time
}

func NewRelay(cfg RelayConfig) *Relay {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	return &Relay{
		cfg:    cfg,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Send posts the payload as a sendMessage text body, the same shape
// the bot's JSON-text fallback parses. Throttled: sends closer than
// MinSendInterval to the previous one are skipped silently.
func (r *Relay) Send(ctx context.Context, payload Payload) error {
	if time.Since(r.lastSend) < MinSendInterval {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	form := url.Values{}
	form.Set("chat_id", r.cfg.ChatID)
	form.Set("text", string(body))

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", r.cfg.APIBase, r.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relay rejected payload: %s: %s", resp.Status, snippet)
	}

	r.lastSend = time.Now()
	return nil
}
