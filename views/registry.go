package views

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
)

// SkeletonPrefix starts the element id of every skeleton template.
const SkeletonPrefix = "template-content-"

// Skeleton is a fragment rendered with every field empty. Client-side code
// clones it and fills in text, so it reproduces server markup exactly.
type Skeleton struct {
	ID   string        `json:"id"`
	HTML template.HTML `json:"html"`
}

// ElementID returns the id of the template element carrying the skeleton.
func (s Skeleton) ElementID() string {
	return SkeletonPrefix + s.ID
}

// Fragments returns the zero value of every fragment kind.
func Fragments() []Fragment {
	return []Fragment{
		MetaPage{},
		MetaListItem{},
		Post{},
		PostTag{},
		PostListItem{},
		Channel{},
		ChannelListItem{},
		Author{},
		AuthorListItem{},
		Tag{},
		TagListItem{},
		List{},
		Message{},
		ErrorMessage{},
	}
}

var skeletons = sync.OnceValues(func() ([]Skeleton, error) {
	frags := Fragments()
	out := make([]Skeleton, 0, len(frags))
	for _, f := range frags {
		var buf bytes.Buffer
		if err := f.Render(context.Background(), &buf); err != nil {
			return nil, fmt.Errorf("render skeleton %s: %w", f.Kind(), err)
		}
		out = append(out, Skeleton{ID: f.Kind(), HTML: template.HTML(buf.String())})
	}
	return out, nil
})

// Skeletons returns the skeleton of every fragment kind. They are rendered
// once on first use; the returned slice must not be modified.
func Skeletons() ([]Skeleton, error) {
	return skeletons()
}
