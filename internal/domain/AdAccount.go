package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

type AdAccount struct {
	ExternalID string          `json:"external_id"`
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Status     AdAccountStatus `json:"status"`
}
