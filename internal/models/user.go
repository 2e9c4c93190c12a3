package models

// AdminUserUpdate is the field set an admin may change on a user record.
// It is forwarded upstream as a PATCH.
type AdminUserUpdate struct {
	Role         *string `json:"role,omitempty"`
	Verified     *bool   `json:"verified,omitempty"`
	Department   *string `json:"department,omitempty"`
	Batch        *int    `json:"batch,omitempty"`
	CollegeEmail *string `json:"collegeEmail,omitempty"`
	UserID       *string `json:"userId,omitempty"`
}
