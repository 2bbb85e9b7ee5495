package slackmoji

import "github.com/slackmoji/slackmoji/internal/types"

// Public type aliases so consumers can import only the slackmoji package.
type (
	// Domain entities
	Emoji     = types.Emoji
	EmojiInfo = types.EmojiInfo

	// Requests
	ListEmojiRequest = types.ListEmojiRequest
	SortBy           = types.SortBy
	SortDir          = types.SortDir

	// Responses
	ListEmojiResponse = types.ListEmojiResponse
	Paging            = types.Paging
)

// Sort codes accepted by ListEmojiRequest.
const (
	SortByName    = types.SortByName
	SortByCreated = types.SortByCreated
	SortAsc       = types.SortAsc
	SortDesc      = types.SortDesc
)

// Errors re-exported in errors.go
