package domain

// Transaction is a purchase as parsed by the upstream collaborator.
// Category is free text and case-insensitive; it is lowercased at every
// lookup boundary.
type Transaction struct {
	Merchant      string `json:"merchant"`
	Amount        Amount `json:"amount"`
	Category      string `json:"category"`
	FrequencyHint string `json:"frequency_hint,omitempty"`
}
