package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDecode is returned when a backend payload does not match the entity
// model: malformed JSON, a missing required field or an invalid identifier.
var ErrDecode = errors.New("backend: invalid response")

// AuthorSummary identifies an author inside post and channel payloads.
type AuthorSummary struct {
	UUID uuid.UUID `json:"uuid"`
	Name string    `json:"name"`
}

// ChannelSummary identifies a channel inside post payloads and listings.
type ChannelSummary struct {
	UUID   uuid.UUID `json:"uuid"`
	Handle string    `json:"handle"`
	Name   string    `json:"name"`
	Lang   string    `json:"lang"`
}

// PostSummary is one entry of a post listing. Author and Channel are only
// present where the endpoint includes them, see API.
type PostSummary struct {
	PostUUID     uuid.UUID       `json:"post_uuid"`
	RevisionUUID string          `json:"revision_uuid"`
	RevisionDate uint64          `json:"revision_date"`
	Title        string          `json:"title"`
	Author       *AuthorSummary  `json:"author,omitempty"`
	Channel      *ChannelSummary `json:"channel,omitempty"`
}

// ChannelInfo is the full channel record.
type ChannelInfo struct {
	UUID            uuid.UUID `json:"uuid"`
	Handle          string    `json:"handle"`
	Name            string    `json:"name"`
	CreatedDate     uint64    `json:"created_date"`
	Lang            string    `json:"lang"`
	DescriptionText string    `json:"description_text"`
}

// Summary returns the summary form of the channel.
func (c ChannelInfo) Summary() ChannelSummary {
	return ChannelSummary{UUID: c.UUID, Handle: c.Handle, Name: c.Name, Lang: c.Lang}
}

// PostInfo is the full record of a post's current revision.
type PostInfo struct {
	PostUUID     uuid.UUID      `json:"post_uuid"`
	Channel      ChannelSummary `json:"channel"`
	Tags         []string       `json:"tags"`
	RevisionUUID string         `json:"revision_uuid"`
	RevisionDate uint64         `json:"revision_date"`
	Title        string         `json:"title"`
	RevisionText string         `json:"revision_text"`
	Author       AuthorSummary  `json:"author"`
}

// AuthorInfo is the full author record.
type AuthorInfo struct {
	UUID            uuid.UUID `json:"uuid"`
	Name            string    `json:"name"`
	CreatedDate     uint64    `json:"created_date"`
	DescriptionText string    `json:"description_text"`
}

// Summary returns the summary form of the author.
func (a AuthorInfo) Summary() AuthorSummary {
	return AuthorSummary{UUID: a.UUID, Name: a.Name}
}

// MetaPage is a static editorial page.
type MetaPage struct {
	PageName    string `json:"page_name"`
	UpdatedDate uint64 `json:"updated_date"`
	Title       string `json:"title"`
	Text        string `json:"text"`
}

// MetaPageListItem is a meta page without its body.
type MetaPageListItem struct {
	PageName    string `json:"page_name"`
	UpdatedDate uint64 `json:"updated_date"`
	Title       string `json:"title"`
}

// TagSummary is a tag with the number of posts carrying it.
type TagSummary struct {
	TagName   string `json:"tag_name"`
	PageCount uint64 `json:"page_count"`
}

func (a *AuthorSummary) UnmarshalJSON(data []byte) error {
	type plain AuthorSummary
	if err := decodeRequired(data, (*plain)(a), "uuid", "name"); err != nil {
		return fmt.Errorf("author summary: %w", err)
	}
	return nil
}

func (c *ChannelSummary) UnmarshalJSON(data []byte) error {
	type plain ChannelSummary
	if err := decodeRequired(data, (*plain)(c), "uuid", "handle", "name", "lang"); err != nil {
		return fmt.Errorf("channel summary: %w", err)
	}
	if !ValidHandle(c.Handle) {
		return fmt.Errorf("channel summary: invalid handle %q", c.Handle)
	}
	return nil
}

func (p *PostSummary) UnmarshalJSON(data []byte) error {
	type plain PostSummary
	if err := decodeRequired(data, (*plain)(p), "post_uuid", "revision_uuid", "revision_date", "title"); err != nil {
		return fmt.Errorf("post summary: %w", err)
	}
	return nil
}

func (c *ChannelInfo) UnmarshalJSON(data []byte) error {
	type plain ChannelInfo
	if err := decodeRequired(data, (*plain)(c), "uuid", "handle", "name", "created_date", "lang", "description_text"); err != nil {
		return fmt.Errorf("channel info: %w", err)
	}
	if !ValidHandle(c.Handle) {
		return fmt.Errorf("channel info: invalid handle %q", c.Handle)
	}
	return nil
}

func (p *PostInfo) UnmarshalJSON(data []byte) error {
	type plain PostInfo
	if err := decodeRequired(data, (*plain)(p), "post_uuid", "channel", "tags", "revision_uuid", "revision_date", "title", "revision_text", "author"); err != nil {
		return fmt.Errorf("post info: %w", err)
	}
	return nil
}

func (a *AuthorInfo) UnmarshalJSON(data []byte) error {
	type plain AuthorInfo
	if err := decodeRequired(data, (*plain)(a), "uuid", "name", "created_date", "description_text"); err != nil {
		return fmt.Errorf("author info: %w", err)
	}
	return nil
}

func (m *MetaPage) UnmarshalJSON(data []byte) error {
	type plain MetaPage
	if err := decodeRequired(data, (*plain)(m), "page_name", "updated_date", "title", "text"); err != nil {
		return fmt.Errorf("meta page: %w", err)
	}
	return nil
}

func (m *MetaPageListItem) UnmarshalJSON(data []byte) error {
	type plain MetaPageListItem
	if err := decodeRequired(data, (*plain)(m), "page_name", "updated_date", "title"); err != nil {
		return fmt.Errorf("meta page list item: %w", err)
	}
	return nil
}

func (t *TagSummary) UnmarshalJSON(data []byte) error {
	type plain TagSummary
	if err := decodeRequired(data, (*plain)(t), "tag_name", "page_count"); err != nil {
		return fmt.Errorf("tag summary: %w", err)
	}
	return nil
}

var jsonNull = []byte("null")

// decodeRequired unmarshals an object into v after checking that every key
// in required is present and not null.
func decodeRequired(data []byte, v any, required ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("expected an object, got null")
	}
	for _, key := range required {
		raw, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			return fmt.Errorf("missing required field %q", key)
		}
	}
	return json.Unmarshal(data, v)
}

// Decode parses a backend payload into T. Every failure wraps ErrDecode.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %T: %w", ErrDecode, v, err)
	}
	return v, nil
}
