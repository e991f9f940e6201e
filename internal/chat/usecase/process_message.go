package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/chat/repository"
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/engine"
	"kakao-support-chatbot/pkg/kakao"
)

// ProcessMessage runs one conversational turn.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chat.ProcessMessageInput) (chat.ProcessMessageOutput, error) {
	if sc.UserID == "" {
		return chat.ProcessMessageOutput{}, chat.ErrMissingUserID
	}

	message := input.Utterance
	uc.l.Infof(ctx, "chat: message from %s: %q", sc.UserID, message)

	session := uc.repo.GetSession(ctx, sc.UserID)

	// Commands bypass validation and the engine entirely.
	if strings.HasPrefix(message, chat.CommandPrefix) {
		resp := uc.dispatchCommand(ctx, sc.UserID, message, session)
		return chat.ProcessMessageOutput{Response: resp}, nil
	}

	if v := ValidateUserInput(message, uc.deniedTerms); !v.Valid {
		return chat.ProcessMessageOutput{Response: kakao.NewTextResponse(v.Message)}, nil
	}

	result, err := uc.engine.Process(ctx, sc.UserID, message, engine.SessionContext{
		Category:        session.Category,
		BusinessSummary: session.BusinessSummary,
		LastInteraction: session.Timestamp,
	})

	var resp kakao.Response
	var step *model.SessionStep
	if err != nil {
		uc.l.Errorf(ctx, "chat: engine call for %s failed: %v", sc.UserID, err)
		resp = failureResponse(err)
	} else {
		resp, step = uc.translate(result)
	}

	// The turn is recorded even when the engine call degraded to an
	// error payload; only validation failures skip the session write.
	raw, _ := json.Marshal(resp)
	now := time.Now().UTC()
	if _, mErr := uc.repo.MergeSession(ctx, sc.UserID, repository.UpdateSessionOptions{
		Step:         step,
		LastMessage:  &message,
		LastResponse: raw,
		Timestamp:    &now,
	}); mErr != nil {
		uc.l.Warnf(ctx, "chat: session write for %s failed, answering anyway: %v", sc.UserID, mErr)
	}

	return chat.ProcessMessageOutput{Response: resp}, nil
}

// failureResponse maps a classified engine failure to its fixed
// user-facing payload.
func failureResponse(err error) kakao.Response {
	switch engine.KindOf(err) {
	case engine.FailureServiceDown:
		return kakao.NewErrorResponse(chat.MsgEngineDown)
	case engine.FailureTimeout:
		return kakao.NewErrorResponse(chat.MsgEngineTimeout)
	case engine.FailureRateLimited:
		return kakao.NewErrorResponse(chat.MsgEngineRateLimited)
	default:
		return kakao.NewErrorResponse(chat.MsgEngineGeneric)
	}
}
