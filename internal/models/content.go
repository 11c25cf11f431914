package models

// SiteContent is the masthead copy from the static bundle.
type SiteContent struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Copyright   string `json:"copyright"`
}

// SectionContent is the copy block for one editorial section of the
// landing page.
type SectionContent struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Badge       string `json:"badge,omitempty"`
	LinkText    string `json:"linkText,omitempty"`
}

// FooterLink is a single footer navigation entry.
type FooterLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// FooterLinkSection groups footer links under a heading.
type FooterLinkSection struct {
	Title string       `json:"title"`
	Items []FooterLink `json:"items"`
}

// ContentBundle is the full static bundle shipped with the binary.
// Loaded once at startup and read-only afterwards.
type ContentBundle struct {
	Site       SiteContent               `json:"site"`
	Categories []Category                `json:"categories"`
	Articles   []Article                 `json:"articles"`
	Authors    []Author                  `json:"authors,omitempty"`
	Sections   map[string]SectionContent `json:"sections,omitempty"`
	Footer     *FooterContent            `json:"footer,omitempty"`
}

// FooterContent holds the footer link tree.
type FooterContent struct {
	Links map[string]FooterLinkSection `json:"links"`
}

// ContentResponse is the combined payload served by GET /api/content.
type ContentResponse struct {
	Categories []Category `json:"categories"`
	Articles   []Article  `json:"articles"`
}
