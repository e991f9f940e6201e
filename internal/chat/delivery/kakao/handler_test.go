package kakao

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/engine"
	pkgKakao "kakao-support-chatbot/pkg/kakao"
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

// Mock use case capturing calls.
type mockUseCase struct {
	processOut   chat.ProcessMessageOutput
	processErr   error
	lastScope    model.Scope
	lastInput    chat.ProcessMessageInput
	lifecycleOut chat.LifecycleOutput
	lifecycleErr error
	lastAction   string
}

func (m *mockUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chat.ProcessMessageInput) (chat.ProcessMessageOutput, error) {
	m.lastScope = sc
	m.lastInput = input
	return m.processOut, m.processErr
}

func (m *mockUseCase) HandleLifecycle(ctx context.Context, sc model.Scope, input chat.LifecycleInput) (chat.LifecycleOutput, error) {
	m.lastScope = sc
	m.lastAction = input.Action
	return m.lifecycleOut, m.lifecycleErr
}

func (m *mockUseCase) GetSession(ctx context.Context, sc model.Scope) (model.Session, error) {
	return model.Session{}, nil
}

func (m *mockUseCase) UpdateSession(ctx context.Context, sc model.Scope, input chat.UpdateSessionInput) (model.Session, error) {
	return model.Session{}, nil
}

func (m *mockUseCase) RecentLogs(ctx context.Context, sc model.Scope, input chat.RecentLogsInput) (chat.RecentLogsOutput, error) {
	return chat.RecentLogsOutput{}, nil
}

func (m *mockUseCase) Stats(ctx context.Context) (model.SessionStats, error) {
	return model.SessionStats{}, nil
}

func (m *mockUseCase) SendDirect(ctx context.Context, sc model.Scope, input chat.SendDirectInput) error {
	return nil
}

func (m *mockUseCase) EngineHealth(ctx context.Context) engine.HealthStatus {
	return engine.HealthStatus{Status: engine.StatusHealthy}
}

func setupRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)

	r := gin.New()
	r.POST("/kakao/webhook", h.HandleWebhook)
	r.POST("/kakao/friend", h.HandleFriendEvent)
	r.POST("/kakao/chatroom", h.HandleChatroomEvent)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) pkgKakao.Response {
	t.Helper()
	var resp pkgKakao.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHandleWebhook(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		uc := &mockUseCase{processOut: chat.ProcessMessageOutput{
			Response: pkgKakao.NewTextResponse("답변입니다"),
		}}
		r := setupRouter(uc)

		w := postJSON(t, r, "/kakao/webhook", gin.H{
			"userRequest": gin.H{"utterance": "지원사업 알려줘"},
			"user":        gin.H{"id": "u1"},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		resp := decodeResponse(t, w)
		if resp.Version != "2.0" {
			t.Errorf("expected skill envelope, got %+v", resp)
		}
		if resp.Template.Outputs[0].SimpleText.Text != "답변입니다" {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
		if uc.lastScope.UserID != "u1" || uc.lastInput.Utterance != "지원사업 알려줘" {
			t.Errorf("use case got wrong input: %+v %+v", uc.lastScope, uc.lastInput)
		}
	})

	t.Run("Missing User", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})
		w := postJSON(t, r, "/kakao/webhook", gin.H{
			"userRequest": gin.H{"utterance": "hi"},
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		resp := decodeResponse(t, w)
		if resp.Template.Outputs[0].SimpleText.Text != msgNoUser {
			t.Errorf("400 must still carry a Kakao payload: %s", w.Body.String())
		}
	})

	t.Run("Missing Utterance", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})
		w := postJSON(t, r, "/kakao/webhook", gin.H{
			"user": gin.H{"id": "u1"},
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		resp := decodeResponse(t, w)
		if resp.Template.Outputs[0].SimpleText.Text != msgNoUtterance {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})
		req := httptest.NewRequest(http.MethodPost, "/kakao/webhook", bytes.NewReader([]byte("{broken")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Use Case Failure", func(t *testing.T) {
		uc := &mockUseCase{processErr: errors.New("boom")}
		r := setupRouter(uc)

		w := postJSON(t, r, "/kakao/webhook", gin.H{
			"userRequest": gin.H{"utterance": "hi"},
			"user":        gin.H{"id": "u1"},
		})

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		resp := decodeResponse(t, w)
		if resp.Template.Outputs[0].SimpleText.Text != msgServerError {
			t.Errorf("500 must still carry a Kakao payload: %s", w.Body.String())
		}
	})
}

func TestHandleLifecycleEvents(t *testing.T) {
	t.Run("Friend Add Answers Payload", func(t *testing.T) {
		welcome := pkgKakao.NewTextResponse("환영합니다")
		uc := &mockUseCase{lifecycleOut: chat.LifecycleOutput{Response: &welcome}}
		r := setupRouter(uc)

		w := postJSON(t, r, "/kakao/friend", gin.H{
			"action": "add",
			"user":   gin.H{"id": "u1"},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastAction != "add" {
			t.Errorf("expected add action, got %q", uc.lastAction)
		}
		resp := decodeResponse(t, w)
		if resp.Template.Outputs[0].SimpleText.Text != "환영합니다" {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("Chatroom Leave Answers Success", func(t *testing.T) {
		uc := &mockUseCase{}
		r := setupRouter(uc)

		w := postJSON(t, r, "/kakao/chatroom", gin.H{
			"action": "leave",
			"user":   gin.H{"id": "u1"},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["success"] != true {
			t.Errorf("expected success ack, got %s", w.Body.String())
		}
	})

	t.Run("Unknown Action", func(t *testing.T) {
		uc := &mockUseCase{lifecycleErr: chat.ErrUnknownAction}
		r := setupRouter(uc)

		w := postJSON(t, r, "/kakao/friend", gin.H{
			"action": "block",
			"user":   gin.H{"id": "u1"},
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Missing User", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})
		w := postJSON(t, r, "/kakao/friend", gin.H{"action": "add"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
