package work

import "time"

// Work là bản ghi phim trong danh mục.
type Work struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Year         *int      `json:"year"`
	Genre        *string   `json:"genre"`
	Description  *string   `json:"description"`
	CoverURL     *string   `json:"cover_url"`
	PersonIDs    []string  `json:"person_ids"`
	ExternalLink *string   `json:"external_link"`
	CreatedAt    time.Time `json:"created_at"`
}

// Filter holds the listing query conditions. Zero values mean "no condition".
type Filter struct {
	Search string
	Name   string
	Genre  string
	Year   *int
	Limit  int
}
