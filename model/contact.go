package model

import "time"

// ContactEntity represents one inbound inquiry tracked through its lifecycle.
type ContactEntity struct {
	ID                     uint64     `db:"id" json:"id"`
	FirstName              string     `db:"first_name" json:"firstName"`
	LastName               string     `db:"last_name" json:"lastName"`
	Email                  string     `db:"email" json:"email"`
	Phone                  string     `db:"phone" json:"phone,omitempty"`
	Company                string     `db:"company" json:"company,omitempty"`
	Country                string     `db:"country" json:"country"`
	Subject                string     `db:"subject" json:"subject"`
	Message                string     `db:"message" json:"message"`
	InquiryType            string     `db:"inquiry_type" json:"inquiryType"`
	ProductsOfInterest     StringList `db:"products_of_interest" json:"productsOfInterest,omitempty"`
	EstimatedQuantity      string     `db:"estimated_quantity" json:"estimatedQuantity,omitempty"`
	PreferredContactMethod string     `db:"preferred_contact_method" json:"preferredContactMethod"`
	Urgency                string     `db:"urgency" json:"urgency"`
	Status                 string     `db:"status" json:"status"`
	AssignedToID           *uint64    `db:"assigned_to" json:"-"`
	AssignedTo             *UserRef   `db:"-" json:"assignedTo,omitempty"`
	ResponseNotes          string     `db:"response_notes" json:"responseNotes,omitempty"`
	FollowUpDate           *time.Time `db:"follow_up_date" json:"followUpDate,omitempty"`
	IPAddress              string     `db:"ip_address" json:"ipAddress,omitempty"`
	UserAgent              string     `db:"user_agent" json:"userAgent,omitempty"`
	CreatedAt              time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt              *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// ContactFilter narrows the inquiry listing. Empty fields do not filter.
type ContactFilter struct {
	Status      string
	InquiryType string
	Urgency     string
	Query       ListQuery
}

// CreateContactRequest is the public submission payload.
type CreateContactRequest struct {
	FirstName              string   `json:"firstName" validate:"required,min=2,max=50"`
	LastName               string   `json:"lastName" validate:"required,min=2,max=50"`
	Email                  string   `json:"email" validate:"required,email"`
	Phone                  string   `json:"phone" validate:"omitempty,min=7,max=20"`
	Company                string   `json:"company" validate:"omitempty,max=100"`
	Country                string   `json:"country" validate:"required,min=2,max=50"`
	Subject                string   `json:"subject" validate:"required,min=5,max=200"`
	Message                string   `json:"message" validate:"required,min=20,max=2000"`
	InquiryType            string   `json:"inquiryType" validate:"required,oneof=product-inquiry partnership pricing quality-certificates bulk-orders other"`
	ProductsOfInterest     []string `json:"productsOfInterest" validate:"omitempty,dive,max=100"`
	EstimatedQuantity      string   `json:"estimatedQuantity" validate:"omitempty,max=100"`
	PreferredContactMethod string   `json:"preferredContactMethod" validate:"omitempty,oneof=email phone both"`
	Urgency                string   `json:"urgency" validate:"omitempty,oneof=low medium high urgent"`
}

// UpdateContactRequest is the admin moderation payload. Only supplied
// fields are written; status accepts any lifecycle value.
type UpdateContactRequest struct {
	Status        *string    `json:"status" validate:"omitempty,oneof=new in-progress responded closed"`
	AssignedTo    *uint64    `json:"assignedTo"`
	ResponseNotes *string    `json:"responseNotes" validate:"omitempty,max=1000"`
	FollowUpDate  *time.Time `json:"followUpDate"`
}

// ContactListResult is the repository-level page plus the totals computed
// over the same filter predicate. The three reads behind it are independent;
// under concurrent writes the counts may reflect a different snapshot than
// the page.
type ContactListResult struct {
	Items        []ContactEntity
	Total        int64
	StatusCounts map[string]int64
}

// ContactOverview aggregates inquiry totals per status.
type ContactOverview struct {
	TotalMessages      int64 `db:"total_messages" json:"totalMessages"`
	NewMessages        int64 `db:"new_messages" json:"newMessages"`
	InProgressMessages int64 `db:"in_progress_messages" json:"inProgressMessages"`
	RespondedMessages  int64 `db:"responded_messages" json:"respondedMessages"`
	ClosedMessages     int64 `db:"closed_messages" json:"closedMessages"`
}

// InquiryTypeCount is one row of the per-category breakdown.
type InquiryTypeCount struct {
	InquiryType string `db:"inquiry_type" json:"inquiryType"`
	Count       int64  `db:"count" json:"count"`
}

// MonthlyCount is one month of inquiry volume.
type MonthlyCount struct {
	Year  int   `db:"year" json:"year"`
	Month int   `db:"month" json:"month"`
	Count int64 `db:"count" json:"count"`
}

// ContactStats is the admin dashboard aggregate.
type ContactStats struct {
	Overview      ContactOverview    `json:"overview"`
	InquiryTypes  []InquiryTypeCount `json:"inquiryTypes"`
	MonthlyTrends []MonthlyCount     `json:"monthlyTrends"`
}
