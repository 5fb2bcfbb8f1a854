package card

// Platform describes a known social platform and its profile URL prefix.
type Platform struct {
	Name    string
	BaseURL string
}

// Platforms lists the platforms offered in the link entry form. Unknown
// platform names are still accepted and rendered generically.
var Platforms = []Platform{
	{Name: "Instagram", BaseURL: "https://instagram.com/"},
	{Name: "LinkedIn", BaseURL: "https://linkedin.com/in/"},
	{Name: "GitHub", BaseURL: "https://github.com/"},
	{Name: "Twitter", BaseURL: "https://twitter.com/"},
	{Name: "Facebook", BaseURL: "https://facebook.com/"},
	{Name: "You Tube", BaseURL: "https://youtube.com/@"},
	{Name: "Website", BaseURL: "https://"},
}

const genericBaseURL = "https://"

// BaseURL returns the profile URL prefix for platform, falling back to a
// generic scheme prefix for unrecognized names.
func BaseURL(platform string) string {
	for _, p := range Platforms {
		if p.Name == platform {
			return p.BaseURL
		}
	}
	return genericBaseURL
}

// DeriveURL computes the canonical profile URL for a platform handle.
func DeriveURL(platform, username string) string {
	return BaseURL(platform) + username
}

// LinkForm tracks the new-link entry fields. Changing the platform or the
// username re-derives the URL every time, including over a value typed into
// the URL field by hand; only a direct SetURL keeps a manual value, and only
// until the next platform or username change.
type LinkForm struct {
	Platform string
	Username string
	URL      string
}

// NewLinkForm returns an entry form preset to the first known platform.
func NewLinkForm() LinkForm {
	return LinkForm{Platform: Platforms[0].Name}
}

// SetPlatform updates the platform and re-derives the URL.
func (f *LinkForm) SetPlatform(platform string) {
	f.Platform = platform
	f.derive()
}

// SetUsername updates the handle and re-derives the URL.
func (f *LinkForm) SetUsername(username string) {
	f.Username = username
	f.derive()
}

// SetURL overrides the URL with a manually edited value.
func (f *LinkForm) SetURL(url string) {
	f.URL = url
}

func (f *LinkForm) derive() {
	if f.Username == "" {
		return
	}
	f.URL = DeriveURL(f.Platform, f.Username)
}
