// Package entities holds the catalog's domain value objects. Entities are
// immutable after construction; an update always builds a new value
// carrying the old identity. An ID of 0 means the entity has never been
// persisted — only a repository's insert path assigns identities.
package entities

// Character is an inhabitant of the catalog's world. EquipmentID and
// FactionID are weak references; the repositories do not enforce them.
type Character struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	Kingdom     string `json:"kingdom"`
	EquipmentID int64  `json:"equipment_id"`
	FactionID   int64  `json:"faction_id"`
}
