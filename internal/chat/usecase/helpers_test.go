package usecase

import (
	"context"

	"kakao-support-chatbot/internal/chat/repository"
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/engine"
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

// Mock session repository capturing writes.
type mockRepo struct {
	session  model.Session
	merged   []repository.UpdateSessionOptions
	cleared  int
	mergeErr error
	clearErr error
	logs     []model.ActivityEntry
	stats    model.SessionStats
}

func (m *mockRepo) GetSession(ctx context.Context, userID string) model.Session {
	if m.session.UserID == "" {
		return model.DefaultSession(userID)
	}
	return m.session
}

func (m *mockRepo) MergeSession(ctx context.Context, userID string, opt repository.UpdateSessionOptions) (model.Session, error) {
	if m.mergeErr != nil {
		return model.Session{}, m.mergeErr
	}
	m.merged = append(m.merged, opt)
	s := m.GetSession(ctx, userID)
	opt.Apply(&s)
	m.session = s
	return s, nil
}

func (m *mockRepo) ClearSession(ctx context.Context, userID string) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared++
	m.session = model.Session{}
	return nil
}

func (m *mockRepo) AppendLog(ctx context.Context, userID, action string, data any) {}

func (m *mockRepo) RecentLogs(ctx context.Context, userID string, limit int) []model.ActivityEntry {
	if limit < len(m.logs) {
		return m.logs[:limit]
	}
	return m.logs
}

func (m *mockRepo) Stats(ctx context.Context) model.SessionStats {
	return m.stats
}

// Mock recommendation engine.
type mockEngine struct {
	result      *engine.Result
	err         error
	health      engine.HealthStatus
	lastUserID  string
	lastMessage string
	lastSession engine.SessionContext
	calls       int
}

func (m *mockEngine) Process(ctx context.Context, userID, message string, sess engine.SessionContext) (*engine.Result, error) {
	m.calls++
	m.lastUserID = userID
	m.lastMessage = message
	m.lastSession = sess
	return m.result, m.err
}

func (m *mockEngine) Health(ctx context.Context) engine.HealthStatus {
	return m.health
}

// Mock direct sender.
type mockSender struct {
	sentTo   []string
	messages []string
	err      error
}

func (m *mockSender) SendToUser(ctx context.Context, userID, message string) error {
	if m.err != nil {
		return m.err
	}
	m.sentTo = append(m.sentTo, userID)
	m.messages = append(m.messages, message)
	return nil
}
