package models

// Tag is a name-unique label attached to certificates.
// Many certificates may share the same tag (many-to-many).
type Tag struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}
