package models

// Job enumerations accepted by the proxy validation.
var (
	JobTypes     = []string{"fulltime", "parttime", "internship", "others"}
	JobWorkTypes = []string{"onsite", "remote", "hybrid"}
)

// JobEligibility scopes a posting to batches and requirements.
type JobEligibility struct {
	Requirements []string `json:"requirements"`
	Batch        []int    `json:"batch"`
}

// JobPayload is the create/update body for job postings.
type JobPayload struct {
	JobName       string         `json:"jobName"`
	Company       string         `json:"company"`
	Role          string         `json:"role"`
	Eligibility   JobEligibility `json:"eligibility"`
	Description   string         `json:"description"`
	Type          string         `json:"type"`
	Stipend       string         `json:"stipend"`
	Duration      string         `json:"duration"`
	WorkType      string         `json:"workType"`
	Links         []string       `json:"links"`
	LastApplyDate string         `json:"lastApplyDate"`
}
