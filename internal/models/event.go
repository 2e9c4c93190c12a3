package models

// EventType enumerates the accepted event categories.
var EventTypes = []string{"alumni", "college", "club", "others"}

// EventPayload is the create/update body for events.
type EventPayload struct {
	Name        string   `json:"name"`
	DateTime    string   `json:"dateTime"`
	EndDateTime string   `json:"endDateTime,omitempty"`
	Venue       string   `json:"venue"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"imageUrl"`
	Links       []string `json:"links"`
	Type        string   `json:"type"`
}
