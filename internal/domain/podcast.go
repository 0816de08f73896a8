package domain

import "time"

type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Podcast struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	ImageURL   string     `json:"imageUrl,omitempty"`
	FeedURL    string     `json:"feedUrl,omitempty"`
	Authors    []Author   `json:"authors,omitempty"`
	Categories []Category `json:"categories,omitempty"`
}

type Episode struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MediaURL    string    `json:"mediaUrl,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	PubDate     time.Time `json:"pubDate"`
	PodcastID   string    `json:"podcastId,omitempty"`
	Podcast     *Podcast  `json:"podcast,omitempty"`
}

// MediaRef is a clip: a titled time range inside an episode.
type MediaRef struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime int       `json:"startTime"`
	EndTime   *int      `json:"endTime,omitempty"`
	OwnerID   string    `json:"ownerId,omitempty"`
	IsPublic  bool      `json:"isPublic"`
	EpisodeID string    `json:"episodeId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Episode   *Episode  `json:"episode,omitempty"`
}

// Duration returns the clip length in seconds, or zero when it runs to the episode end.
func (m MediaRef) Duration() int {
	if m.EndTime == nil || *m.EndTime <= m.StartTime {
		return 0
	}
	return *m.EndTime - m.StartTime
}
