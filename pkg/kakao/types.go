package kakao

// Response is the Kakao i Open Builder skill response envelope.
type Response struct {
	Version  string   `json:"version"`
	Template Template `json:"template"`
}

// Template carries the ordered outputs and optional quick replies.
type Template struct {
	Outputs      []Output     `json:"outputs"`
	QuickReplies []QuickReply `json:"quickReplies,omitempty"`
}

// Output is one element of template.outputs. Exactly one field is set.
type Output struct {
	SimpleText  *SimpleText  `json:"simpleText,omitempty"`
	Carousel    *Carousel    `json:"carousel,omitempty"`
	SimpleImage *SimpleImage `json:"simpleImage,omitempty"`
	ListCard    *ListCard    `json:"listCard,omitempty"`
}

// SimpleText is a plain text bubble.
type SimpleText struct {
	Text string `json:"text"`
}

// Carousel is a horizontally scrollable card list.
type Carousel struct {
	Type  string `json:"type"`
	Items []Card `json:"items"`
}

// Card is a single basicCard carousel item.
type Card struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
	Buttons     []Button   `json:"buttons,omitempty"`
}

// Thumbnail is a card image.
type Thumbnail struct {
	ImageURL string `json:"imageUrl"`
}

// Button is a card action button.
type Button struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	WebLinkURL  string `json:"webLinkUrl,omitempty"`
	MessageText string `json:"messageText,omitempty"`
}

// QuickReply is a tappable reply chip under the template.
type QuickReply struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	MessageText string `json:"messageText"`
}

// SimpleImage is a single image bubble.
type SimpleImage struct {
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
}

// ListCard is a vertical list with a header.
type ListCard struct {
	Header ListHeader `json:"header"`
	Items  []ListItem `json:"items"`
}

// ListHeader is the list card title row.
type ListHeader struct {
	Title string `json:"title"`
}

// ListItem is one row of a list card.
type ListItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Link        *Link  `json:"link,omitempty"`
}

// Link is a web link attached to a list item.
type Link struct {
	Web string `json:"web,omitempty"`
}
