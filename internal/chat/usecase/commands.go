package usecase

import (
	"context"
	"fmt"
	"strings"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/kakao"
)

// dispatchCommand resolves a slash command against the fixed command
// set. Matching is case-insensitive after trimming; every command has
// a Korean alias. The engine is never involved.
func (uc *implUseCase) dispatchCommand(ctx context.Context, userID, raw string, session model.Session) kakao.Response {
	command := strings.ToLower(strings.TrimSpace(raw))

	switch command {
	case chat.CmdStart, chat.CmdStartKo:
		uc.clearQuietly(ctx, userID)
		return kakao.NewTextResponse(chat.MsgWelcome)

	case chat.CmdHelp, chat.CmdHelpKo:
		return kakao.NewTextResponse(chat.MsgHelp)

	case chat.CmdReset, chat.CmdResetKo:
		uc.clearQuietly(ctx, userID)
		return kakao.NewTextResponse(chat.MsgResetDone)

	case chat.CmdStatus, chat.CmdStatusKo:
		// Built from the pre-dispatch session snapshot.
		return kakao.NewTextResponse(statusText(userID, session))

	default:
		return kakao.NewTextResponse(chat.MsgUnknownCommand)
	}
}

func (uc *implUseCase) clearQuietly(ctx context.Context, userID string) {
	if err := uc.repo.ClearSession(ctx, userID); err != nil {
		uc.l.Warnf(ctx, "chat: clear session for %s failed: %v", userID, err)
	}
}

// statusText renders the session snapshot, omitting empty fields.
func statusText(userID string, session model.Session) string {
	var b strings.Builder
	b.WriteString("📊 현재 상태\n\n")
	fmt.Fprintf(&b, "👤 사용자 ID: %s", userID)

	if !session.Timestamp.IsZero() {
		fmt.Fprintf(&b, "\n🕒 마지막 활동: %s", session.Timestamp.Format("2006-01-02 15:04:05"))
	}
	if session.LastMessage != "" {
		fmt.Fprintf(&b, "\n💬 마지막 메시지: %s", session.LastMessage)
	}
	if len(session.Category) > 0 {
		fmt.Fprintf(&b, "\n🏷️ 선택된 분야: %s", strings.Join(session.Category, ", "))
	}
	if session.BusinessSummary != "" {
		fmt.Fprintf(&b, "\n📝 사업 내용: %s", session.BusinessSummary)
	}

	return b.String()
}
