package models

// ContactResponsePayload is an admin reply to a contact-us query.
type ContactResponsePayload struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
