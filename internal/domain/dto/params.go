package dto

// GalleryParams carries the raw query parameters of a gallery listing
// request before normalization. All fields are optional.
type GalleryParams struct {
	Page     string
	Limit    string
	Tag      string
	Tags     string // comma-separated, AND semantics
	Visible  string
	Author   string
	AuthorID string
	IllustID string
}
