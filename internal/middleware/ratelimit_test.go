package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"kakao-support-chatbot/pkg/kakao"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func setupLimited(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, requestsPerMin)

	r := gin.New()
	r.POST("/hook", mw.RateLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func hit(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/hook", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("Denies Past Burst With Kakao Payload", func(t *testing.T) {
		// 10/min keeps the burst at 1, so the second immediate
		// request is denied.
		r := setupLimited(10)

		if w := hit(r, "10.0.0.1:1000"); w.Code != http.StatusOK {
			t.Fatalf("first request must pass, got %d", w.Code)
		}

		w := hit(r, "10.0.0.1:1000")
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}

		var resp kakao.Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Version != kakao.Version {
			t.Errorf("429 must answer a skill payload, got %s", w.Body.String())
		}
		if resp.Template.Outputs[0].SimpleText.Text != msgRateLimited {
			t.Errorf("unexpected text: %q", resp.Template.Outputs[0].SimpleText.Text)
		}
	})

	t.Run("Buckets Are Per Client", func(t *testing.T) {
		r := setupLimited(10)

		if w := hit(r, "10.0.0.1:1000"); w.Code != http.StatusOK {
			t.Fatalf("first client must pass, got %d", w.Code)
		}
		if w := hit(r, "10.0.0.2:1000"); w.Code != http.StatusOK {
			t.Errorf("second client must have its own bucket, got %d", w.Code)
		}
	})

	t.Run("Zero Config Falls Back To Default", func(t *testing.T) {
		rl := newRateLimiter(0)
		if !rl.Allow("k") {
			t.Error("default budget must allow the first request")
		}
	})
}
