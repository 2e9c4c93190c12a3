package models

// AlumniVerifyPayload toggles the verified flag on an alumni record.
// Setting verified=false is the non-destructive "revoke access" path.
type AlumniVerifyPayload struct {
	Verified *bool `json:"verified"`
}
