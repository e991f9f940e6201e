package usecase

import (
	"fmt"
	"strings"
	"testing"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/engine"
)

func newTestUseCase() *implUseCase {
	return New(&mockLogger{}, &mockRepo{}, &mockEngine{}, nil, nil)
}

func TestTranslateSupportPrograms(t *testing.T) {
	uc := newTestUseCase()

	t.Run("Caps Carousel At Five Cards", func(t *testing.T) {
		programs := make([]engine.Program, 7)
		for i := range programs {
			programs[i] = engine.Program{
				Name:    fmt.Sprintf("지원사업 %d", i+1),
				Summary: "중소기업 대상 지원",
				URL:     "https://example.com",
			}
		}

		resp, step := uc.translate(&engine.Result{
			Success: true,
			Type:    engine.TypeSupportPrograms,
			Data:    engine.ResultData{Programs: programs},
		})

		if step == nil || *step != model.StepResult {
			t.Errorf("expected result step, got %v", step)
		}
		if len(resp.Template.Outputs) != 2 {
			t.Fatalf("expected carousel plus trailing text, got %d outputs", len(resp.Template.Outputs))
		}

		carousel := resp.Template.Outputs[0].Carousel
		if carousel == nil {
			t.Fatal("first output must be a carousel")
		}
		if carousel.Type != "basicCard" {
			t.Errorf("expected basicCard carousel, got %q", carousel.Type)
		}
		if len(carousel.Items) != 5 {
			t.Errorf("expected 5 cards, got %d", len(carousel.Items))
		}

		trailing := resp.Template.Outputs[1].SimpleText
		if trailing == nil {
			t.Fatal("second output must be a simpleText")
		}
		if !strings.Contains(trailing.Text, "7") {
			t.Errorf("trailing text must carry the full count, got %q", trailing.Text)
		}
	})

	t.Run("Truncates Long Descriptions", func(t *testing.T) {
		long := strings.Repeat("가", 150)
		resp, _ := uc.translate(&engine.Result{
			Success: true,
			Type:    engine.TypeSupportPrograms,
			Data: engine.ResultData{Programs: []engine.Program{
				{Name: "기술개발지원", Summary: long, URL: "https://example.com"},
			}},
		})

		card := resp.Template.Outputs[0].Carousel.Items[0]
		runes := []rune(card.Description)
		if len(runes) != 103 {
			t.Errorf("expected 100 runes plus ellipsis marker, got %d runes", len(runes))
		}
		if !strings.HasSuffix(card.Description, "...") {
			t.Errorf("expected ellipsis suffix, got %q", card.Description)
		}
	})

	t.Run("Card Fallbacks", func(t *testing.T) {
		resp, _ := uc.translate(&engine.Result{
			Success: true,
			Type:    engine.TypeSupportPrograms,
			Data:    engine.ResultData{Programs: []engine.Program{{}}},
		})

		card := resp.Template.Outputs[0].Carousel.Items[0]
		if card.Title == "" || card.Description == "" {
			t.Errorf("empty program fields must fall back, got %+v", card)
		}
		if len(card.Buttons) != 1 || card.Buttons[0].WebLinkURL != "#" {
			t.Errorf("missing URL must fall back to #, got %+v", card.Buttons)
		}
	})

	t.Run("Empty Result Falls Back To Text", func(t *testing.T) {
		resp, step := uc.translate(&engine.Result{
			Success: true,
			Type:    engine.TypeSupportPrograms,
			Data:    engine.ResultData{},
		})

		if step == nil || *step != model.StepResult {
			t.Errorf("empty result still marks the result step")
		}
		if got := textOf(t, resp); got != chat.MsgNoResults {
			t.Errorf("expected no-results text, got %q", got)
		}
	})
}

func TestTranslateBusinessAnalysis(t *testing.T) {
	uc := newTestUseCase()

	resp, step := uc.translate(&engine.Result{
		Success: true,
		Type:    engine.TypeBusinessAnalysis,
		Data: engine.ResultData{
			Analysis:        "AI 기반 제조 자동화 사업입니다.",
			Recommendations: []string{"기술개발 지원사업 확인", "창업 바우처 검토"},
		},
	})

	if step == nil || *step != model.StepBusiness {
		t.Errorf("expected business step, got %v", step)
	}

	text := textOf(t, resp)
	for _, want := range []string{"AI 기반 제조 자동화 사업입니다.", "• 기술개발 지원사업 확인", "• 창업 바우처 검토"} {
		if !strings.Contains(text, want) {
			t.Errorf("analysis text missing %q:\n%s", want, text)
		}
	}
}

func TestTranslateCategorySelection(t *testing.T) {
	uc := newTestUseCase()

	t.Run("Uses Engine Message And Categories", func(t *testing.T) {
		resp, step := uc.translate(&engine.Result{
			Success: true,
			Type:    engine.TypeCategorySelection,
			Data:    engine.ResultData{Categories: []string{"기술", "금융", "수출"}},
			Message: "어느 분야가 궁금하세요?",
		})

		if step == nil || *step != model.StepCategory {
			t.Errorf("expected category step, got %v", step)
		}
		if got := textOf(t, resp); got != "어느 분야가 궁금하세요?" {
			t.Errorf("expected engine message, got %q", got)
		}
		if len(resp.Template.QuickReplies) != 3 {
			t.Errorf("expected 3 quick replies, got %d", len(resp.Template.QuickReplies))
		}
	})

	t.Run("Defaults Prompt When Message Empty", func(t *testing.T) {
		resp, _ := uc.translate(&engine.Result{
			Success: true,
			Type:    engine.TypeCategorySelection,
			Data:    engine.ResultData{Categories: []string{"기술"}},
		})
		if got := textOf(t, resp); got != chat.MsgSelectCategory {
			t.Errorf("expected default prompt, got %q", got)
		}
	})

	t.Run("Falls Back To Full Category Set", func(t *testing.T) {
		resp, _ := uc.translate(&engine.Result{
			Success: true,
			Type:    engine.TypeCategorySelection,
		})
		if got := len(resp.Template.QuickReplies); got != len(chat.Categories) {
			t.Errorf("expected %d quick replies, got %d", len(chat.Categories), got)
		}
	})
}

func TestTranslateErrorAndFallback(t *testing.T) {
	uc := newTestUseCase()

	t.Run("Error Tag", func(t *testing.T) {
		resp, step := uc.translate(&engine.Result{
			Success: false,
			Type:    engine.TypeError,
			Message: "처리할 수 없는 요청입니다.",
		})
		if step != nil {
			t.Errorf("error tag must not move the conversation")
		}
		if got := textOf(t, resp); got != "❌ 처리할 수 없는 요청입니다." {
			t.Errorf("expected prefixed error text, got %q", got)
		}
	})

	t.Run("Unknown Tag With Message", func(t *testing.T) {
		resp, step := uc.translate(&engine.Result{Success: true, Type: "something_new", Message: "알겠습니다."})
		if step != nil {
			t.Errorf("fallback must not move the conversation")
		}
		if got := textOf(t, resp); got != "알겠습니다." {
			t.Errorf("expected passthrough message, got %q", got)
		}
	})

	t.Run("Unknown Tag Without Message", func(t *testing.T) {
		resp, _ := uc.translate(&engine.Result{Success: true, Type: engine.TypeNoResults})
		if got := textOf(t, resp); got != chat.MsgProcessed {
			t.Errorf("expected default ack, got %q", got)
		}
	})
}
