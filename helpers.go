package frontend

import (
	"github.com/google/uuid"

	"github.com/alarkhabil/frontend/backend"
	"github.com/alarkhabil/frontend/markdown"
	"github.com/alarkhabil/frontend/unixtime"
	"github.com/alarkhabil/frontend/views"
)

func channelPath(handle string) string {
	return "/c/" + handle + "/"
}

func postPath(handle string, id uuid.UUID) string {
	return "/c/" + handle + "/" + id.String() + "/"
}

func authorPath(id uuid.UUID) string {
	return "/author/" + id.String() + "/"
}

// BuildURL resolves a site path against the configured top URL.
func BuildURL(cfg views.SiteConfig, path string) string {
	return views.ResolveURL(cfg.TopURL, path)
}

// Entity to fragment mapping. Dates are formatted in the server timezone
// and markdown bodies are converted here, so fragments only interpolate.

func postListItem(p backend.PostSummary, tf unixtime.Formatter) views.PostListItem {
	t := tf.Format(p.RevisionDate)
	item := views.PostListItem{
		PostUUID:  p.PostUUID.String(),
		Title:     p.Title,
		DateTime:  t.DateTime,
		Formatted: t.Formatted,
	}
	if p.Channel != nil {
		item.ChannelHandle = p.Channel.Handle
		item.ChannelName = p.Channel.Name
		item.Lang = views.LangTag(p.Channel.Lang)
	}
	if p.Author != nil {
		item.AuthorUUID = p.Author.UUID.String()
		item.AuthorName = p.Author.Name
	}
	return item
}

func postListItems(posts []backend.PostSummary, tf unixtime.Formatter) []views.PostListItem {
	items := make([]views.PostListItem, len(posts))
	for i, p := range posts {
		items[i] = postListItem(p, tf)
	}
	return items
}

// withChannel fills in the channel of posts listed on its own page.
func withChannel(posts []backend.PostSummary, ch backend.ChannelSummary) []backend.PostSummary {
	out := make([]backend.PostSummary, len(posts))
	for i, p := range posts {
		p.Channel = &ch
		out[i] = p
	}
	return out
}

// withAuthor fills in the author of posts listed on their author's page.
func withAuthor(posts []backend.PostSummary, au backend.AuthorSummary) []backend.PostSummary {
	out := make([]backend.PostSummary, len(posts))
	for i, p := range posts {
		p.Author = &au
		out[i] = p
	}
	return out
}

// postFragment leaves Tags empty; see postTags.
func postFragment(p backend.PostInfo, tf unixtime.Formatter) views.Post {
	t := tf.Format(p.RevisionDate)
	return views.Post{
		PostUUID:      p.PostUUID.String(),
		Title:         p.Title,
		Lang:          views.LangTag(p.Channel.Lang),
		ChannelHandle: p.Channel.Handle,
		ChannelName:   p.Channel.Name,
		AuthorUUID:    p.Author.UUID.String(),
		AuthorName:    p.Author.Name,
		DateTime:      t.DateTime,
		Formatted:     t.Formatted,
		Content:       markdown.HTML(p.RevisionText),
	}
}

func postTags(p backend.PostInfo) []views.PostTag {
	tags := make([]views.PostTag, len(p.Tags))
	for i, name := range p.Tags {
		tags[i] = views.PostTag{TagName: name}
	}
	return tags
}

func channelFragment(ch backend.ChannelInfo, tf unixtime.Formatter) views.Channel {
	t := tf.Format(ch.CreatedDate)
	return views.Channel{
		Handle:           ch.Handle,
		Name:             ch.Name,
		Lang:             views.LangTag(ch.Lang),
		CreatedDateTime:  t.DateTime,
		CreatedFormatted: t.Formatted,
		Description:      markdown.HTML(ch.DescriptionText),
	}
}

func channelListItems(channels []backend.ChannelSummary) []views.ChannelListItem {
	items := make([]views.ChannelListItem, len(channels))
	for i, ch := range channels {
		items[i] = views.ChannelListItem{Handle: ch.Handle, Name: ch.Name, Lang: views.LangTag(ch.Lang)}
	}
	return items
}

func authorFragment(au backend.AuthorInfo, tf unixtime.Formatter) views.Author {
	t := tf.Format(au.CreatedDate)
	return views.Author{
		UUID:             au.UUID.String(),
		Name:             au.Name,
		CreatedDateTime:  t.DateTime,
		CreatedFormatted: t.Formatted,
		Description:      markdown.HTML(au.DescriptionText),
	}
}

func authorListItems(authors []backend.AuthorSummary) []views.AuthorListItem {
	items := make([]views.AuthorListItem, len(authors))
	for i, au := range authors {
		items[i] = views.AuthorListItem{UUID: au.UUID.String(), Name: au.Name}
	}
	return items
}

func tagListItems(tags []backend.TagSummary) []views.TagListItem {
	items := make([]views.TagListItem, len(tags))
	for i, tag := range tags {
		items[i] = views.TagListItem{TagName: tag.TagName, PageCount: views.PostCount(tag.PageCount)}
	}
	return items
}

func metaPageFragment(m backend.MetaPage, tf unixtime.Formatter) views.MetaPage {
	t := tf.Format(m.UpdatedDate)
	return views.MetaPage{
		PageName:         m.PageName,
		Title:            m.Title,
		UpdatedDateTime:  t.DateTime,
		UpdatedFormatted: t.Formatted,
		Content:          markdown.HTML(m.Text),
	}
}

func metaListItems(pages []backend.MetaPageListItem, tf unixtime.Formatter) []views.MetaListItem {
	items := make([]views.MetaListItem, len(pages))
	for i, m := range pages {
		t := tf.Format(m.UpdatedDate)
		items[i] = views.MetaListItem{
			PageName:         m.PageName,
			Title:            m.Title,
			UpdatedDateTime:  t.DateTime,
			UpdatedFormatted: t.Formatted,
		}
	}
	return items
}
