package usecase

import (
	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/chat/repository"
	pkgLog "kakao-support-chatbot/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.SessionRepository
	engine      chat.RecommendationEngine
	sender      chat.DirectSender
	deniedTerms []string
}

// New creates a new chat UseCase instance. sender may be nil when no
// Kakao API key is configured; only SendDirect depends on it.
func New(
	l pkgLog.Logger,
	repo repository.SessionRepository,
	eng chat.RecommendationEngine,
	sender chat.DirectSender,
	deniedTerms []string,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		engine:      eng,
		sender:      sender,
		deniedTerms: deniedTerms,
	}
}
