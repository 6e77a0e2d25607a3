package model

// Item is a hydrated lost-and-found item as presented to callers. The
// display identifier combines the type's letter with the numeric id and is
// never stored.
type Item struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	DisplayID   string  `json:"displayId"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Found       bool    `json:"found"`
	Archived    bool    `json:"archived"`
	FinderName  *string `json:"name,omitempty"`
	FinderEmail *string `json:"email,omitempty"`
	Returned    *string `json:"returned,omitempty"`
}

// Report is a hydrated lost-item report submitted by an owner.
type Report struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Type        string   `json:"type"`
	Locations   []string `json:"location"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Found       bool     `json:"found"`
	Archived    bool     `json:"archived"`
	Viewed      bool     `json:"viewed"`
	Returned    *string  `json:"returned,omitempty"`
}

// TypeEntry is a taxonomy node. Hidden types stay resolvable so that items
// created before a type was hidden keep rendering correctly.
type TypeEntry struct {
	ID      string `json:"id"`
	Name    string `json:"type"`
	Letter  string `json:"letter"`
	Visible bool   `json:"view"`
}

// ExpiredItems buckets undiscovered items by the expiration policy.
type ExpiredItems struct {
	Expired   []*Item `json:"expired"`
	Potential []*Item `json:"potential"`
}
