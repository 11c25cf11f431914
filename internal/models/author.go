package models

// Author is an editorial contributor from the static bundle.
//
// Articles reference authors by display name only. There is no referential
// integrity: an article whose author field matches no Author still renders,
// with a slug derived from the name.
type Author struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Slug   string        `json:"slug"`
	Bio    string        `json:"bio"`
	Image  string        `json:"image"`
	Role   string        `json:"role"`
	Social *AuthorSocial `json:"social,omitempty"`
}

// AuthorSocial holds optional social handles.
type AuthorSocial struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}
