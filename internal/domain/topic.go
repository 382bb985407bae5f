package domain

// Topic is a subject area that articles are filed under. Topics are seeded
// externally and never modified through the API.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
