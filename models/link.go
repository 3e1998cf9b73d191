package models

// Link is a hypermedia triple describing a permitted next action on a
// resource instance: relation name, target URI, and HTTP method.
// Links exist only on the in-memory representation returned to a caller.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method"`
}
