package usecase

import (
	"fmt"
	"strings"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/engine"
	"kakao-support-chatbot/pkg/kakao"
)

const (
	maxCarouselCards   = 5
	maxCardDescription = 100
)

// translate maps an engine result onto a Kakao payload. Total over the
// tag set: unrecognized tags fall through to a plain text answer. The
// second return is the conversation step implied by the result, nil
// when the turn does not move the conversation.
func (uc *implUseCase) translate(result *engine.Result) (kakao.Response, *model.SessionStep) {
	switch result.Type {
	case engine.TypeSupportPrograms:
		return supportProgramsResponse(result.Data), stepPtr(model.StepResult)

	case engine.TypeBusinessAnalysis:
		return businessAnalysisResponse(result.Data), stepPtr(model.StepBusiness)

	case engine.TypeCategorySelection:
		return categorySelectionResponse(result.Data, result.Message), stepPtr(model.StepCategory)

	case engine.TypeError:
		return kakao.NewErrorResponse(result.Message), nil

	default:
		message := result.Message
		if message == "" {
			message = chat.MsgProcessed
		}
		return kakao.NewTextResponse(message), nil
	}
}

func stepPtr(s model.SessionStep) *model.SessionStep {
	return &s
}

// supportProgramsResponse renders up to five program cards plus a
// trailing text carrying the full result count.
func supportProgramsResponse(data engine.ResultData) kakao.Response {
	if len(data.Programs) == 0 {
		return kakao.NewTextResponse(chat.MsgNoResults)
	}

	programs := data.Programs
	if len(programs) > maxCarouselCards {
		programs = programs[:maxCarouselCards]
	}

	cards := make([]kakao.Card, 0, len(programs))
	for _, p := range programs {
		cards = append(cards, programCard(p))
	}

	summary := fmt.Sprintf(chat.MsgProgramCountFmt, len(data.Programs))
	return kakao.NewCarouselWithTextResponse(cards, summary)
}

func programCard(p engine.Program) kakao.Card {
	title := p.Name
	if title == "" {
		title = "지원사업"
	}

	description := p.Summary
	if description == "" {
		description = p.Analysis
	}
	if description == "" {
		description = "상세 정보를 확인해주세요."
	} else {
		description = kakao.Truncate(description, maxCardDescription)
	}

	link := p.URL
	if link == "" {
		link = "#"
	}

	return kakao.Card{
		Title:       title,
		Description: description,
		Buttons: []kakao.Button{
			{Label: "상세보기", Action: "webLink", WebLinkURL: link},
		},
	}
}

func businessAnalysisResponse(data engine.ResultData) kakao.Response {
	var bullets strings.Builder
	for i, rec := range data.Recommendations {
		if i > 0 {
			bullets.WriteString("\n")
		}
		bullets.WriteString("• " + rec)
	}

	text := fmt.Sprintf(`🔍 사업 분석 결과

📊 분석 내용:
%s

💡 추천사항:
%s

더 구체적인 지원사업을 찾으시려면 사업 분야를 알려주세요!`, data.Analysis, bullets.String())

	return kakao.NewTextResponse(text)
}

func categorySelectionResponse(data engine.ResultData, message string) kakao.Response {
	if message == "" {
		message = chat.MsgSelectCategory
	}
	categories := data.Categories
	if len(categories) == 0 {
		categories = chat.Categories
	}
	return kakao.NewQuickReplyResponse(message, kakao.NewMessageQuickReplies(categories))
}
