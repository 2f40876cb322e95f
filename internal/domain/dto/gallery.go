package dto

import "time"

// AccessURLs is a pair of time-limited URLs for one stored object.
type AccessURLs struct {
	DisplayURL  string `json:"displayUrl"`
	DownloadURL string `json:"downloadUrl"`
}

type TagEntry struct {
	Name        string `json:"name"`
	Translation string `json:"translation,omitempty"`
}

type GalleryImage struct {
	ID           string     `json:"id"`
	SourceAddr   string     `json:"sourceAddress"`
	Visible      bool       `json:"visible"`
	Author       string     `json:"author,omitempty"`
	AuthorID     string     `json:"authorId,omitempty"`
	Title        string     `json:"title,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	OriginWorkID int64      `json:"originWorkId"`
	Width        *int       `json:"width,omitempty"`
	Height       *int       `json:"height,omitempty"`
	Tags         []TagEntry `json:"tags"`
	DisplayURL   string     `json:"displayUrl"`
	DownloadURL  string     `json:"downloadUrl"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type GalleryPage struct {
	Data       []GalleryImage `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
