package model

// CreateItemRequest is the payload for logging a newly found item.
type CreateItemRequest struct {
	Type        string `json:"type"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// UpdateItemRequest patches an open item. Nil fields are left untouched.
type UpdateItemRequest struct {
	Type        *string `json:"type,omitempty"`
	Location    *string `json:"location,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

// FoundItemRequest records who claimed an item.
type FoundItemRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateReportRequest is the public lost-report submission payload. Owners
// may name several candidate locations.
type CreateReportRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Type        string   `json:"type"`
	Locations   []string `json:"location"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
}

// UpdateReportRequest patches a lost report. Nil fields are left untouched.
type UpdateReportRequest struct {
	Name        *string   `json:"name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Locations   *[]string `json:"location,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Description *string   `json:"description,omitempty"`
}
