package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Emoji is a custom emoji record as returned by emoji.adminList. All fields
// are remote state; the client never constructs or mutates them.
type Emoji struct {
	Name            string   `json:"name"`
	IsAlias         int      `json:"is_alias"`
	AliasFor        string   `json:"alias_for"`
	URL             string   `json:"url"`
	Created         int64    `json:"created"`
	TeamID          string   `json:"team_id"`
	UserID          string   `json:"user_id"`
	UserDisplayName string   `json:"user_display_name"`
	AvatarHash      string   `json:"avatar_hash"`
	CanDelete       bool     `json:"can_delete"`
	IsBad           bool     `json:"is_bad"`
	Synonyms        []string `json:"synonyms"`
}

// Aliased reports whether the record points at another emoji rather than
// carrying its own image. Slack encodes the flag as 0/1.
func (e Emoji) Aliased() bool { return e.IsAlias != 0 }

// EmojiInfo is the reduced record returned by emoji.getInfo. The endpoint
// omits the creation timestamp, avatar hash, synonym list and is_bad flag.
type EmojiInfo struct {
	Name            string `json:"name"`
	IsAlias         int    `json:"is_alias"`
	AliasFor        string `json:"alias_for"`
	URL             string `json:"url"`
	TeamID          string `json:"team_id"`
	UserID          string `json:"user_id"`
	UserDisplayName string `json:"user_display_name"`
	CanDelete       bool   `json:"can_delete"`
}

// Aliased reports whether the emoji is an alias for another name.
func (e EmojiInfo) Aliased() bool { return e.IsAlias != 0 }
