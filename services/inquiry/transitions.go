package inquiry

import "venuebook/models"

// transitions is the allowed status transition table. Approved and denied
// are terminal; negotiation must still resolve to one of them.
var transitions = map[string][]string{
	models.InquiryStatusPending: {
		models.InquiryStatusApproved,
		models.InquiryStatusDenied,
		models.InquiryStatusNegotiation,
	},
	models.InquiryStatusNegotiation: {
		models.InquiryStatusApproved,
		models.InquiryStatusDenied,
	},
}

// CanTransition reports whether an inquiry may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
