package constant

// Contact lifecycle statuses. Admin updates may write any of these in any
// order; no forward-only transition is enforced.
const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in-progress"
	ContactStatusResponded  = "responded"
	ContactStatusClosed     = "closed"
)

// ContactStatuses lists every status, in lifecycle order.
var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusInProgress,
	ContactStatusResponded,
	ContactStatusClosed,
}

// Inquiry categories.
const (
	InquiryTypeProduct      = "product-inquiry"
	InquiryTypePartnership  = "partnership"
	InquiryTypePricing      = "pricing"
	InquiryTypeCertificates = "quality-certificates"
	InquiryTypeBulkOrders   = "bulk-orders"
	InquiryTypeOther        = "other"
)

// Urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
	UrgencyUrgent = "urgent"
)

// Preferred contact methods.
const (
	ContactMethodEmail = "email"
	ContactMethodPhone = "phone"
	ContactMethodBoth  = "both"
)
