package domain

// Date format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// TCSRatePercent is the fixed tax surcharge applied to the pre-tax subtotal
const TCSRatePercent = 5

// RequiredStepSequence is the canonical ordered list of workflow steps a
// client must have completed before a booking can be confirmed
var RequiredStepSequence = []string{
	"Trip Details",
	"Date Selection",
	"Price Summary",
	"Traveller Details",
}
