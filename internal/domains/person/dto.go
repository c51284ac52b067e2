package person

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Payload is the shared create/update request shape. Create requires name;
// update applies only the fields that are present and non-null (id, photo_url
// and created_at are never settable through it).
type Payload struct {
	Name        *string  `json:"name"`
	Age         *int     `json:"age"`
	Nationality *string  `json:"nationality"`
	Biography   *string  `json:"biography"`
	WorkIDs     []string `json:"work_ids"`
}

// Validate checks field-level constraints shared by create and update.
// Name presence on create is enforced by the service.
func (p Payload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Length(1, 255)),
		validation.Field(&p.Age, validation.Min(0).Error("age must be non-negative")),
		validation.Field(&p.Nationality, validation.Length(0, 255)),
		validation.Field(&p.Biography, validation.Length(0, 10000)),
	)
}

// ToEntity maps the payload onto a fresh entity.
// The service assigns id and created_at.
func (p Payload) ToEntity() *Person {
	entity := &Person{
		Age:         p.Age,
		Nationality: p.Nationality,
		Biography:   p.Biography,
		WorkIDs:     []string{},
	}
	if p.Name != nil {
		entity.Name = *p.Name
	}
	if p.WorkIDs != nil {
		entity.WorkIDs = p.WorkIDs
	}
	return entity
}

// Fields returns the present non-null fields as a partial document for the
// field-level merge. Absent and explicit-null entries are equivalent: both
// leave the stored value untouched.
func (p Payload) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Age != nil {
		fields["age"] = *p.Age
	}
	if p.Nationality != nil {
		fields["nationality"] = *p.Nationality
	}
	if p.Biography != nil {
		fields["biography"] = *p.Biography
	}
	if p.WorkIDs != nil {
		fields["work_ids"] = p.WorkIDs
	}
	return fields
}
