package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestSupportChatQuotaGuard exercises the live chat endpoint end to end:
// a fresh visitor gets an answer, and the remaining allowance counts down
// between calls. It needs a running API with a Gemini key and Redis, so it
// is gated on ATX_API_BASE_URL.
func TestSupportChatQuotaGuard(t *testing.T) {
	loadDotEnv(t)

	baseURL := strings.TrimRight(os.Getenv("ATX_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("ATX_API_BASE_URL not set; skipping live API tests")
	}
	client := &http.Client{Timeout: 30 * time.Second}

	waitForAPIReady(t, client, baseURL)

	visitorID := fmt.Sprintf("itest-%d", time.Now().UnixNano())

	status, body := callChat(t, client, baseURL, visitorID, "Say hello in one short sentence.")
	if status == http.StatusServiceUnavailable {
		t.Skip("assistant not configured on target API; skipping")
	}
	if status != http.StatusOK {
		t.Fatalf("first call: expected %d, got %d, body=%s", http.StatusOK, status, string(body))
	}
	var first struct {
		Text      string `json:"text"`
		Remaining int64  `json:"remaining"`
	}
	if err := json.Unmarshal(body, &first); err != nil {
		t.Fatalf("first call: unmarshal response: %v, raw=%s", err, string(body))
	}
	if strings.TrimSpace(first.Text) == "" {
		t.Fatalf("first call: expected non-empty text, raw=%s", string(body))
	}

	status, body = callChat(t, client, baseURL, visitorID, "And goodbye, also in one sentence.")
	if status != http.StatusOK {
		t.Fatalf("second call: expected %d, got %d, body=%s", http.StatusOK, status, string(body))
	}
	var second struct {
		Remaining int64 `json:"remaining"`
	}
	if err := json.Unmarshal(body, &second); err != nil {
		t.Fatalf("second call: unmarshal response: %v, raw=%s", err, string(body))
	}
	if second.Remaining != first.Remaining-1 {
		t.Fatalf("allowance did not count down: first=%d second=%d", first.Remaining, second.Remaining)
	}
}

func callChat(t *testing.T, client *http.Client, baseURL, visitorID, message string) (int, []byte) {
	t.Helper()

	payload, err := json.Marshal(map[string]string{
		"visitor_id": visitorID,
		"message":    message,
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/support/chat", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call /api/support/chat: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp.StatusCode, body
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
		if err == nil {
			resp, err := client.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	path := ""
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if path == "" {
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		k := strings.TrimSpace(parts[0])
		v := strings.TrimSpace(parts[1])
		if k == "" {
			continue
		}
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		_ = os.Setenv(k, v)
	}
}
