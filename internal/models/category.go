package models

// Category is a static editorial section. Categories have no lifecycle
// beyond load in bundle mode; in database mode they can be created via
// the API but never updated or deleted.
type Category struct {
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}
