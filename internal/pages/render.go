package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"podverse-web/internal/domain"
	"podverse-web/internal/i18n"
)

const episodeKeyPrefix = "pages_episode"

// SortOption is one entry of a sort dropdown.
type SortOption struct {
	Label    string
	Key      domain.SortKey
	Selected bool
}

var sortLabels = map[domain.SortKey]i18n.Key{
	domain.SortChronological: i18n.KeyChronological,
	domain.SortMostRecent:    i18n.KeyRecent,
	domain.SortTopPastDay:    i18n.KeyTopPastDay,
	domain.SortTopPastWeek:   i18n.KeyTopPastWeek,
	domain.SortTopPastMonth:  i18n.KeyTopPastMonth,
	domain.SortTopPastYear:   i18n.KeyTopPastYear,
	domain.SortTopAllTime:    i18n.KeyTopAllTime,
	domain.SortOldest:        i18n.KeyOldest,
	domain.SortRandom:        i18n.KeyRandom,
}

func SortOptions(sorts []domain.SortKey, selected domain.SortKey, t i18n.T) []SortOption {
	out := make([]SortOption, 0, len(sorts))
	for _, s := range sorts {
		label := string(s)
		if k, ok := sortLabels[s]; ok {
			label = t(k)
		}
		out = append(out, SortOption{Label: label, Key: s, Selected: s == selected})
	}
	return out
}

// ClipListItem is the rendered form of one clip row.
type ClipListItem struct {
	Key          string
	ID           string
	Title        string
	Href         string
	TimeRange    string
	Duration     string
	Created      string
	EpisodeTitle string
	PodcastTitle string
	ImageURL     string
}

// ClipListElements attaches episode to each clip and builds its row.
func ClipListElements(items []domain.MediaRef, episode *domain.Episode, t i18n.T, now time.Time) []ClipListItem {
	out := make([]ClipListItem, 0, len(items))
	for i := range items {
		m := items[i]
		if episode != nil {
			m.Episode = episode
		}
		row := ClipListItem{
			Key:       fmt.Sprintf("%s-%d", episodeKeyPrefix, i),
			ID:        m.ID,
			Title:     m.Title,
			Href:      "/clip/" + m.ID,
			TimeRange: clipTimeRange(m),
		}
		if strings.TrimSpace(row.Title) == "" {
			row.Title = t(i18n.KeyUntitledClip)
		}
		if d := m.Duration(); d > 0 {
			row.Duration = FormatClock(d)
		}
		if !m.CreatedAt.IsZero() {
			row.Created = humanize.RelTime(m.CreatedAt, now, "ago", "from now")
		}
		if m.Episode != nil {
			row.EpisodeTitle = m.Episode.Title
			row.ImageURL = m.Episode.ImageURL
			if p := m.Episode.Podcast; p != nil {
				row.PodcastTitle = p.Title
				if row.ImageURL == "" {
					row.ImageURL = p.ImageURL
				}
			}
		}
		out = append(out, row)
	}
	return out
}

func clipTimeRange(m domain.MediaRef) string {
	start := FormatClock(m.StartTime)
	if m.EndTime == nil {
		return start
	}
	return start + " - " + FormatClock(*m.EndTime)
}

// FormatClock renders seconds as H:MM:SS, or M:SS under an hour.
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	h, m, s := sec/3600, (sec%3600)/60, sec%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// PodcastHeader is the header shown above podcast and episode pages.
type PodcastHeader struct {
	MainTitle     string
	AboveTitle    string
	ImageURL      string
	ImageAlt      string
	Authors       string
	Categories    []domain.Category
	SubscribeText string
	PodcastID     string
	IsSubscribed  bool
}

// HasBelowText reports whether authors or categories are shown under the title.
func (h PodcastHeader) HasBelowText() bool {
	return h.Authors != "" || len(h.Categories) > 0
}

// NewPodcastHeader builds the header. With an episode, the episode title is
// the main title and the podcast title sits above it.
func NewPodcastHeader(podcast *domain.Podcast, episode *domain.Episode, user *domain.UserInfo, t i18n.T) PodcastHeader {
	if podcast == nil {
		podcast = &domain.Podcast{}
	}
	podcastTitle := podcast.Title
	if strings.TrimSpace(podcastTitle) == "" {
		podcastTitle = t(i18n.KeyUntitledPodcast)
	}

	h := PodcastHeader{
		MainTitle:  podcastTitle,
		ImageURL:   podcast.ImageURL,
		ImageAlt:   t(i18n.KeyPodcastArtwork),
		Categories: podcast.Categories,
		PodcastID:  podcast.ID,
	}
	if episode != nil {
		h.MainTitle = EpisodeTitle(episode, t)
		h.AboveTitle = podcastTitle
	}

	names := make([]string, 0, len(podcast.Authors))
	for _, a := range podcast.Authors {
		if n := strings.TrimSpace(a.Name); n != "" {
			names = append(names, n)
		}
	}
	h.Authors = strings.Join(names, ", ")

	h.IsSubscribed = user.IsSubscribed(podcast.ID)
	if h.IsSubscribed {
		h.SubscribeText = t(i18n.KeyUnsubscribe)
	} else {
		h.SubscribeText = t(i18n.KeySubscribe)
	}
	return h
}

// EpisodeTitle tolerates a missing episode.
func EpisodeTitle(episode *domain.Episode, t i18n.T) string {
	if episode == nil || strings.TrimSpace(episode.Title) == "" {
		return t(i18n.KeyUntitledEpisode)
	}
	return episode.Title
}

type NavBarLink struct {
	Href   string
	Text   string
	Active bool
}

// NavBarLinks lists the top navigation, marking the link whose path prefixes current.
func NavBarLinks(current string, t i18n.T) []NavBarLink {
	links := []NavBarLink{
		{Href: "/podcasts", Text: t(i18n.KeyPodcasts)},
		{Href: "/episodes", Text: t(i18n.KeyEpisodes)},
		{Href: "/clips", Text: t(i18n.KeyClips)},
		{Href: "/tutorials", Text: t(i18n.KeyTutorials)},
	}
	for i := range links {
		links[i].Active = strings.HasPrefix(current, links[i].Href)
	}
	return links
}
