package work

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Payload is the shared create/update request shape. Create requires name;
// update applies only the fields that are present and non-null (id, cover_url
// and created_at are never settable through it).
type Payload struct {
	Name         *string  `json:"name"`
	Year         *int     `json:"year"`
	Genre        *string  `json:"genre"`
	Description  *string  `json:"description"`
	PersonIDs    []string `json:"person_ids"`
	ExternalLink *string  `json:"external_link"`
}

// Validate checks field-level constraints shared by create and update.
// Name presence on create is enforced by the service.
func (p Payload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Length(1, 255)),
		validation.Field(&p.Year, validation.Min(0).Error("year must be non-negative")),
		validation.Field(&p.Genre, validation.Length(0, 255)),
		validation.Field(&p.Description, validation.Length(0, 10000)),
		validation.Field(&p.ExternalLink, validation.Length(0, 2048)),
	)
}

// ToEntity maps the payload onto a fresh entity.
// The service assigns id and created_at.
func (p Payload) ToEntity() *Work {
	entity := &Work{
		Year:         p.Year,
		Genre:        p.Genre,
		Description:  p.Description,
		ExternalLink: p.ExternalLink,
		PersonIDs:    []string{},
	}
	if p.Name != nil {
		entity.Name = *p.Name
	}
	if p.PersonIDs != nil {
		entity.PersonIDs = p.PersonIDs
	}
	return entity
}

// Fields returns the present non-null fields as a partial document for the
// field-level merge.
func (p Payload) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Year != nil {
		fields["year"] = *p.Year
	}
	if p.Genre != nil {
		fields["genre"] = *p.Genre
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.PersonIDs != nil {
		fields["person_ids"] = p.PersonIDs
	}
	if p.ExternalLink != nil {
		fields["external_link"] = *p.ExternalLink
	}
	return fields
}
