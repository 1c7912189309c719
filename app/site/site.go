// Package site holds the metadata record rendered in page headers and social
// previews, and resolves its build-dependent fields.
package site

import "strconv"

const (
	// DefaultRepositoryURL is used when no repository URL is configured.
	DefaultRepositoryURL = "https://github.com/matiboux/TOTP-Online"
	// DevVersion is the version of builds without commit SHA or version tag.
	DevVersion = "dev"

	shortSHALength = 7
)

// Config carries the build parameters the metadata depends on.
// Every field is optional; empty values fall through to the next source.
type Config struct {
	RepositoryURL string `env:"GITHUB_REPOSITORY_URL"`
	CommitSHA     string `env:"GITHUB_SHA"`
	VersionTag    string `env:"VERSION_TAG"`
}

// Or returns c with its empty fields taken from fallback.
func (c Config) Or(fallback Config) Config {
	if c.RepositoryURL == "" {
		c.RepositoryURL = fallback.RepositoryURL
	}
	if c.CommitSHA == "" {
		c.CommitSHA = fallback.CommitSHA
	}
	if c.VersionTag == "" {
		c.VersionTag = fallback.VersionTag
	}
	return c
}

// Site is the descriptive record of the page. Empty fields are omitted from
// the rendered head.
type Site struct {
	Lang              string   `json:"lang,omitempty"`
	Title             string   `json:"title,omitempty"`
	Description       string   `json:"description,omitempty"`
	Version           string   `json:"version,omitempty"`
	Author            string   `json:"author,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
	Generator         string   `json:"generator,omitempty"`
	ThemeColor        string   `json:"theme_color,omitempty"`
	ViewportScale     float64  `json:"viewport_scale,omitempty"`
	Favicon           string   `json:"favicon,omitempty"`
	SocialTitle       string   `json:"social_title,omitempty"`
	SocialDescription string   `json:"social_description,omitempty"`
	SocialImage       string   `json:"social_image,omitempty"`
	SocialURL         string   `json:"social_url,omitempty"`
	SocialType        string   `json:"social_type,omitempty"`
	SocialTwitterCard string   `json:"social_twitter_card,omitempty"`
	RepositoryURL     string   `json:"repository_url"`
}

// New returns the TOTP Online metadata for cfg.
// Social title and description mirror the page title and description.
func New(cfg Config) Site {
	s := Site{
		Lang:          "en",
		Title:         "TOTP Online",
		Description:   "Online TOTP codes generator.",
		Version:       ResolveVersion(cfg.CommitSHA, cfg.VersionTag),
		Author:        "Matiboux",
		ThemeColor:    "#ffffff",
		ViewportScale: 1,
		RepositoryURL: ResolveRepositoryURL(cfg.RepositoryURL),
	}
	s.SocialTitle = s.Title
	s.SocialDescription = s.Description
	return s
}

// ResolveVersion returns the first seven characters of sha, else tag, else "dev".
func ResolveVersion(sha, tag string) string {
	if sha != "" {
		if len(sha) > shortSHALength {
			return sha[:shortSHALength]
		}
		return sha
	}
	if tag != "" {
		return tag
	}
	return DevVersion
}

// ResolveRepositoryURL returns url, or DefaultRepositoryURL when url is empty.
func ResolveRepositoryURL(url string) string {
	if url != "" {
		return url
	}
	return DefaultRepositoryURL
}

// Viewport returns the content of the viewport meta tag.
func (s Site) Viewport() string {
	if s.ViewportScale <= 0 {
		return "width=device-width"
	}
	return "width=device-width, initial-scale=" + strconv.FormatFloat(s.ViewportScale, 'f', -1, 64)
}
