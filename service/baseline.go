package service

import "github.com/shopspring/decimal"

// BaselineRewardRate is the flat cash-back rate of the hypothetical
// comparison card. Every "extra" figure in a projection is measured
// against it; change it here and nowhere else.
var BaselineRewardRate = decimal.NewFromFloat(0.02)

// BaselineReward is what the flat-rate comparison card would pay on the
// purchase.
func BaselineReward(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(BaselineRewardRate)
}
