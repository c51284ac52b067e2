package person

import "time"

// Person is the "actor" record of the catalog.
// Optional fields are pointers so absent values serialize as null, and so
// update payloads can tell "present" from "omitted".
type Person struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         *int      `json:"age"`
	Nationality *string   `json:"nationality"`
	Biography   *string   `json:"biography"`
	PhotoURL    *string   `json:"photo_url"`
	WorkIDs     []string  `json:"work_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// Filter carries the optional list/filter parameters.
// Zero values contribute no predicate term.
type Filter struct {
	Search      string
	Name        string
	Nationality string
	AgeMin      *int
	AgeMax      *int
	Limit       int
}
