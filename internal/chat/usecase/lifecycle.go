package usecase

import (
	"context"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/kakao"
)

// HandleLifecycle reacts to platform friend/chatroom events. Add and
// join start the user over with a welcome payload; delete and leave
// only clear state.
func (uc *implUseCase) HandleLifecycle(ctx context.Context, sc model.Scope, input chat.LifecycleInput) (chat.LifecycleOutput, error) {
	if sc.UserID == "" {
		return chat.LifecycleOutput{}, chat.ErrMissingUserID
	}

	uc.l.Infof(ctx, "chat: lifecycle %s for %s", input.Action, sc.UserID)

	switch input.Action {
	case chat.LifecycleAdd, chat.LifecycleJoin:
		uc.clearQuietly(ctx, sc.UserID)
		resp := kakao.NewTextResponse(chat.MsgWelcome)
		return chat.LifecycleOutput{Response: &resp}, nil

	case chat.LifecycleDelete, chat.LifecycleLeave:
		uc.clearQuietly(ctx, sc.UserID)
		return chat.LifecycleOutput{}, nil

	default:
		return chat.LifecycleOutput{}, chat.ErrUnknownAction
	}
}
