package pages

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"podverse-web/internal/i18n"
)

//go:embed tutorials.yaml
var tutorialsYAML []byte

const (
	notAvailableTextMobile = "Feature not available on mobile."
	notAvailableTextWeb    = "Feature not available on web."
)

type tutorialSource struct {
	ID                string `yaml:"id"`
	Title             string `yaml:"title"`
	Description       string `yaml:"description"`
	MobileExplanation string `yaml:"mobileExplanation"`
	MobilePreview     string `yaml:"mobilePreview"`
	MobileUnavailable bool   `yaml:"mobileUnavailable"`
	WebExplanation    string `yaml:"webExplanation"`
	WebPreview        string `yaml:"webPreview"`
	WebUnavailable    bool   `yaml:"webUnavailable"`
}

// TutorialSection is one rendered topic of the tutorials page.
type TutorialSection struct {
	ID                  string
	Title               string
	Description         string
	MobileExplanation   template.HTML
	MobilePreviewEmbed  string
	WebExplanation      template.HTML
	WebPreviewEmbed     string
	DefaultTypeSelected string
}

// LoadTutorials parses the embedded topics and renders their markdown.
func LoadTutorials() ([]TutorialSection, error) {
	var src []tutorialSource
	if err := yaml.Unmarshal(tutorialsYAML, &src); err != nil {
		return nil, fmt.Errorf("parse tutorials: %w", err)
	}
	md := goldmark.New()
	out := make([]TutorialSection, 0, len(src))
	for _, s := range src {
		sec := TutorialSection{
			ID:                 s.ID,
			Title:              s.Title,
			Description:        s.Description,
			MobilePreviewEmbed: s.MobilePreview,
			WebPreviewEmbed:    s.WebPreview,
		}
		var err error
		if sec.MobileExplanation, err = explanation(md, s.MobileExplanation, s.MobileUnavailable, notAvailableTextMobile); err != nil {
			return nil, fmt.Errorf("tutorial %s: %w", s.ID, err)
		}
		if sec.WebExplanation, err = explanation(md, s.WebExplanation, s.WebUnavailable, notAvailableTextWeb); err != nil {
			return nil, fmt.Errorf("tutorial %s: %w", s.ID, err)
		}
		out = append(out, sec)
	}
	return out, nil
}

func explanation(md goldmark.Markdown, body string, unavailable bool, unavailableText string) (template.HTML, error) {
	if unavailable {
		return template.HTML("<p>" + template.HTMLEscapeString(unavailableText) + "</p>"), nil
	}
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// FilterTutorials keeps sections whose title fuzzily matches q or whose
// description contains it.
func FilterTutorials(sections []TutorialSection, q string) []TutorialSection {
	q = strings.TrimSpace(q)
	if q == "" {
		return sections
	}
	lower := strings.ToLower(q)
	out := []TutorialSection{}
	for _, s := range sections {
		if fuzzy.MatchFold(q, s.Title) || strings.Contains(strings.ToLower(s.Description), lower) {
			out = append(out, s)
		}
	}
	return out
}

type Meta struct {
	Title         string
	Description   string
	CurrentURL    string
	OGType        string
	RobotsNoIndex bool
}

type TOCItem struct {
	ID    string
	Title string
}

type TutorialsView struct {
	Meta        Meta
	Nav         []NavBarLink
	Header      string
	TopicsLabel string
	MobileLabel string
	WebLabel    string
	TOC         []TOCItem
	Sections    []TutorialSection
	Query       string
}

// BuildTutorialsView prepares the tutorials page. isMobile selects the tab
// each section opens on.
func BuildTutorialsView(sections []TutorialSection, webBaseURL, query string, isMobile bool, t i18n.T) TutorialsView {
	defaultType := "web"
	if isMobile {
		defaultType = "mobile"
	}
	filtered := FilterTutorials(sections, query)
	view := TutorialsView{
		Meta: Meta{
			Title:       t(i18n.KeyTutorialsPageTitle),
			Description: t(i18n.KeyTutorialsPageDesc),
			CurrentURL:  strings.TrimRight(webBaseURL, "/") + "/tutorials",
			OGType:      "website",
		},
		Nav:         NavBarLinks("/tutorials", t),
		Header:      t(i18n.KeyTutorials),
		TopicsLabel: t(i18n.KeyTopics),
		MobileLabel: t(i18n.KeyMobile),
		WebLabel:    t(i18n.KeyWeb),
		Query:       query,
	}
	for _, s := range filtered {
		s.DefaultTypeSelected = defaultType
		view.TOC = append(view.TOC, TOCItem{ID: s.ID, Title: s.Title})
		view.Sections = append(view.Sections, s)
	}
	return view
}

var mobileUAHints = []string{"mobi", "android", "iphone", "ipad", "ipod", "tablet", "silk", "kindle"}

// IsMobileOrTablet guesses the device class from a User-Agent header.
func IsMobileOrTablet(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, h := range mobileUAHints {
		if strings.Contains(ua, h) {
			return true
		}
	}
	return false
}
