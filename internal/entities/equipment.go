package entities

// Equipment is a piece of gear in the catalog.
type Equipment struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	MadeBy string `json:"made_by"`
}
