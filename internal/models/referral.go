package models

// ReferralJobDetails describes the position a referral offer covers.
type ReferralJobDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Link        string `json:"link"`
}

// ReferralPayload is the create/update body for referral offers.
type ReferralPayload struct {
	JobDetails        ReferralJobDetails `json:"jobDetails"`
	LastApplyDate     string             `json:"lastApplyDate"`
	NumberOfReferrals *float64           `json:"numberOfReferrals"`
}
