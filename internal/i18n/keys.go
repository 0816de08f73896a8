package i18n

// Key is a translation key. Only the constants below are valid keys.
type Key string

const (
	KeyClips              Key = "Clips"
	KeyEpisodes           Key = "Episodes"
	KeyPodcasts           Key = "Podcasts"
	KeyTutorials          Key = "Tutorials"
	KeyChronological      Key = "Chronological"
	KeyRecent             Key = "Recent"
	KeyTopPastDay         Key = "TopPastDay"
	KeyTopPastWeek        Key = "TopPastWeek"
	KeyTopPastMonth       Key = "TopPastMonth"
	KeyTopPastYear        Key = "TopPastYear"
	KeyTopAllTime         Key = "TopAllTime"
	KeyOldest             Key = "Oldest"
	KeyRandom             Key = "Random"
	KeyUntitledEpisode    Key = "untitledEpisode"
	KeyUntitledPodcast    Key = "untitledPodcast"
	KeyUntitledClip       Key = "untitledClip"
	KeySubscribe          Key = "Subscribe"
	KeyUnsubscribe        Key = "Unsubscribe"
	KeyPodcastArtwork     Key = "PodcastArtwork"
	KeyPrevious           Key = "Previous"
	KeyNext               Key = "Next"
	KeyNoClips            Key = "NoClips"
	KeyTopics             Key = "Topics"
	KeyMobile             Key = "Mobile"
	KeyWeb                Key = "Web"
	KeyTutorialsPageTitle Key = "pages-tutorials_Title"
	KeyTutorialsPageDesc  Key = "pages-tutorials_Description"
)

// AllKeys is every key a locale file is expected to define.
var AllKeys = []Key{
	KeyClips, KeyEpisodes, KeyPodcasts, KeyTutorials,
	KeyChronological, KeyRecent, KeyTopPastDay, KeyTopPastWeek, KeyTopPastMonth,
	KeyTopPastYear, KeyTopAllTime, KeyOldest, KeyRandom,
	KeyUntitledEpisode, KeyUntitledPodcast, KeyUntitledClip,
	KeySubscribe, KeyUnsubscribe, KeyPodcastArtwork,
	KeyPrevious, KeyNext, KeyNoClips, KeyTopics, KeyMobile, KeyWeb,
	KeyTutorialsPageTitle, KeyTutorialsPageDesc,
}
