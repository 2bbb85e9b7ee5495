package api

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/slackmoji/slackmoji/internal/types"
)

// RemoveEmoji deletes the named custom emoji via emoji.remove.
func RemoveEmoji(ctx context.Context, httpClient HTTPClient, baseURL, token, name string) error {
	if err := types.ValidateEmojiName(name); err != nil {
		return err
	}
	_, err := postForm(ctx, httpClient, baseURL, token, "emoji.remove", [][2]string{
		{"name", name},
	}, nil)
	return err
}

// AddEmoji uploads image as a new custom emoji via emoji.add. The binary
// content is attached as the "image" form part with the fixed mode=data
// indicator.
func AddEmoji(ctx context.Context, httpClient HTTPClient, baseURL, token, name string, image io.Reader) error {
	if err := types.ValidateEmojiName(name); err != nil {
		return err
	}
	_, err := postForm(ctx, httpClient, baseURL, token, "emoji.add", [][2]string{
		{"mode", "data"},
		{"name", name},
	}, &filePart{field: "image", filename: name, r: image})
	return err
}

// AddEmojiAlias registers name as an alias for an existing emoji via
// emoji.add with mode=alias.
func AddEmojiAlias(ctx context.Context, httpClient HTTPClient, baseURL, token, name, aliasFor string) error {
	if err := types.ValidateEmojiName(name); err != nil {
		return err
	}
	if err := types.ValidateEmojiName(aliasFor); err != nil {
		return err
	}
	_, err := postForm(ctx, httpClient, baseURL, token, "emoji.add", [][2]string{
		{"mode", "alias"},
		{"name", name},
		{"alias_for", aliasFor},
	}, nil)
	return err
}

// GetEmojiInfo retrieves the record for a single emoji via emoji.getInfo.
func GetEmojiInfo(ctx context.Context, httpClient HTTPClient, baseURL, token, name string) (*types.EmojiInfo, error) {
	if err := types.ValidateEmojiName(name); err != nil {
		return nil, err
	}
	body, err := postForm(ctx, httpClient, baseURL, token, "emoji.getInfo", [][2]string{
		{"name", name},
	}, nil)
	if err != nil {
		return nil, err
	}
	var info types.EmojiInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListEmoji retrieves one page of the workspace emoji catalog via
// emoji.adminList. Unset request fields are filled with their defaults and
// the query list is JSON-encoded before transmission.
func ListEmoji(ctx context.Context, httpClient HTTPClient, baseURL, token string, req types.ListEmojiRequest) (*types.ListEmojiResponse, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	queries, err := json.Marshal(req.Queries)
	if err != nil {
		return nil, err
	}
	body, err := postForm(ctx, httpClient, baseURL, token, "emoji.adminList", [][2]string{
		{"queries", string(queries)},
		{"sort_by", string(req.SortBy)},
		{"sort_dir", string(req.SortDir)},
		{"page", strconv.Itoa(req.Page)},
		{"count", strconv.Itoa(req.Count)},
	}, nil)
	if err != nil {
		return nil, err
	}
	var lr types.ListEmojiResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, err
	}
	return &lr, nil
}
