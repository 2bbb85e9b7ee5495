package types

// ------------------------------
// Response Types
// ------------------------------

// Envelope is the universal wrapper shape every emoji endpoint returns.
// Endpoint-specific payloads extend it with additional top-level fields.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Paging carries the pagination metadata of emoji.adminList.
type Paging struct {
	Count int `json:"count"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// ListEmojiResponse mirrors the emoji.adminList payload.
type ListEmojiResponse struct {
	Emoji                 []Emoji `json:"emoji"`
	CustomEmojiTotalCount int     `json:"custom_emoji_total_count"`
	Paging                Paging  `json:"paging"`
}
