package aiusage

import "errors"

// ErrQuotaExhausted is returned when a responder has no provider calls left this month.
var ErrQuotaExhausted = errors.New("monthly AI call quota exhausted")

// DefaultMonthlyCalls is the provider call allowance per responder per month.
const DefaultMonthlyCalls = 1000
