package domain

// CardOffer is one recommended card. Every field except the name is
// optional upstream; missing rewards and fees read as zero.
type CardOffer struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	RewardAmount Amount `json:"reward_amount"`
	RewardRate   string `json:"reward_rate,omitempty"`
	AnnualFee    Amount `json:"annual_fee"`
	SignupBonus  string `json:"signup_bonus,omitempty"`
	AIReasoning  string `json:"ai_reasoning,omitempty"`
	DataSource   string `json:"data_source,omitempty"`
}

// Recommendation ranks up to three cards. Any subset of the slots may be
// populated, including none.
type Recommendation struct {
	BestOverall *CardOffer `json:"best_overall,omitempty"`
	RunnerUp    *CardOffer `json:"runner_up,omitempty"`
	Alternative *CardOffer `json:"alternative,omitempty"`
}

func (r Recommendation) IsEmpty() bool {
	return r.BestOverall == nil && r.RunnerUp == nil && r.Alternative == nil
}

// Offers returns the populated slots in rank order.
func (r Recommendation) Offers() []*CardOffer {
	var offers []*CardOffer
	for _, o := range []*CardOffer{r.BestOverall, r.RunnerUp, r.Alternative} {
		if o != nil {
			offers = append(offers, o)
		}
	}
	return offers
}
