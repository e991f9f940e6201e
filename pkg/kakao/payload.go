package kakao

// Version is the skill response protocol version Kakao expects.
const Version = "2.0"

// ActionMessage is the quick-reply action that echoes the value back
// as a user message.
const ActionMessage = "message"

// NewTextResponse builds a single simpleText response.
func NewTextResponse(text string) Response {
	return Response{
		Version: Version,
		Template: Template{
			Outputs: []Output{
				{SimpleText: &SimpleText{Text: text}},
			},
		},
	}
}

// NewErrorResponse builds a simpleText response marked with the failure glyph.
func NewErrorResponse(message string) Response {
	return NewTextResponse("❌ " + message)
}

// NewCarouselResponse builds a basicCard carousel from the given cards.
func NewCarouselResponse(cards []Card) Response {
	return Response{
		Version: Version,
		Template: Template{
			Outputs: []Output{
				{Carousel: &Carousel{Type: "basicCard", Items: cards}},
			},
		},
	}
}

// NewCarouselWithTextResponse builds a carousel followed by a trailing
// simpleText output in the same template.
func NewCarouselWithTextResponse(cards []Card, text string) Response {
	return Response{
		Version: Version,
		Template: Template{
			Outputs: []Output{
				{Carousel: &Carousel{Type: "basicCard", Items: cards}},
				{SimpleText: &SimpleText{Text: text}},
			},
		},
	}
}

// NewQuickReplyResponse builds a simpleText response with quick reply chips.
func NewQuickReplyResponse(text string, replies []QuickReply) Response {
	return Response{
		Version: Version,
		Template: Template{
			Outputs: []Output{
				{SimpleText: &SimpleText{Text: text}},
			},
			QuickReplies: replies,
		},
	}
}

// NewMessageQuickReplies builds quick replies whose label and echoed
// message are both the given values.
func NewMessageQuickReplies(values []string) []QuickReply {
	replies := make([]QuickReply, 0, len(values))
	for _, v := range values {
		replies = append(replies, QuickReply{
			Label:       v,
			Action:      ActionMessage,
			MessageText: v,
		})
	}
	return replies
}

// NewImageResponse builds a single simpleImage response.
func NewImageResponse(imageURL, altText string) Response {
	if altText == "" {
		altText = "이미지"
	}
	return Response{
		Version: Version,
		Template: Template{
			Outputs: []Output{
				{SimpleImage: &SimpleImage{ImageURL: imageURL, AltText: altText}},
			},
		},
	}
}

// NewListResponse builds a listCard response with the given header title.
func NewListResponse(title string, items []ListItem) Response {
	return Response{
		Version: Version,
		Template: Template{
			Outputs: []Output{
				{ListCard: &ListCard{Header: ListHeader{Title: title}, Items: items}},
			},
		},
	}
}

// Truncate cuts s to at most max runes, appending an ellipsis marker
// when anything was cut. Short strings pass through unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
