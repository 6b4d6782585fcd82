package entities

// Faction is an allegiance group in the catalog.
type Faction struct {
	ID          int64  `json:"id,omitempty"`
	FactionName string `json:"faction_name"`
	Description string `json:"description"`
}
