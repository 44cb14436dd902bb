package views

// NavigationItem is one link in the header or footer navigation. URL may be
// relative to the site or absolute.
type NavigationItem struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// SiteConfig holds site-wide settings read from the config file.
// Every page render receives it so nothing is hardcoded.
type SiteConfig struct {
	APIURL           string           `json:"api_url"` // backend base URL
	SiteName         string           `json:"site_name"`
	SiteDescription  string           `json:"site_description"`
	SiteCopyright    string           `json:"site_copyright"`
	HeaderNavigation []NavigationItem `json:"header_navigation"`
	FooterNavigation []NavigationItem `json:"footer_navigation"`
	TopURL           string           `json:"top_url"`         // canonical site root, absolute
	OGImage          string           `json:"og_image"`        // relative to TopURL or absolute
	ServerTimezone   string           `json:"server_timezone"` // IANA name, UTC when invalid
}
