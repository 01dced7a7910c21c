package models

// Choice lists mirror the options offered on the CRM forms. The first entry
// is not necessarily the default; see the Default* constants.

var AccountTypes = []string{"Main Contractor", "Subcontractor", "Developer", "Architect", "Other"}

var RiskRatings = []string{"Low", "Medium", "High"}

var OpportunityStages = []string{
	"Lead",
	"Qualified",
	"Estimating",
	"Bid Submitted",
	"Negotiation",
	"Awarded",
	"In Production",
	"Delivered",
	"Closed Won",
	"Closed Lost",
}

// ClosedStages are excluded from the open pipeline and the overdue report.
var ClosedStages = []string{"Closed Won", "Closed Lost"}

var QuoteStatuses = []string{"Draft", "Submitted", "Accepted", "Rejected", "Revised"}

var Currencies = []string{"GBP", "EUR"}

var ActivityTypes = []string{"Call", "Site Visit", "Bid Due", "Follow-up", "Delivery Coordination", "Other"}

const (
	DefaultAccountType   = "Main Contractor"
	DefaultRiskRating    = "Low"
	DefaultPaymentTerms  = "30 days"
	DefaultStage         = "Estimating"
	DefaultProductType   = "Precast panels"
	DefaultProbability   = 0.3
	DefaultSource        = "Direct"
	DefaultQuoteStatus   = "Draft"
	DefaultCurrency      = "GBP"
	DefaultActivityType  = "Bid Due"
	DefaultActivityOwner = "Sales"

	MaxMoneyValue = 1e9
)

func IsClosedStage(stage string) bool {
	return contains(ClosedStages, stage)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
