package domain

// Product is a single catalog record. The catalog is loaded once at startup
// and never mutated; (Name, Brand) is the identity key used for matching.
type Product struct {
	Brand       string  `json:"brand"`
	Name        string  `json:"product_name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// RecommendationStub is an unverified candidate as returned by the AI,
// prior to matching against the catalog.
type RecommendationStub struct {
	ProductName string `json:"product_name"`
	Brand       string `json:"brand"`
	Reason      string `json:"reason"`
}

// Recommendation pairs a resolved catalog record with the AI's stated reason.
type Recommendation struct {
	Product Product `json:"product"`
	Reason  string  `json:"reason"`
}

// RecommendRequest is a product recommendation request from the mobile client.
type RecommendRequest struct {
	Query string `json:"query" binding:"required"`
}

// RecommendResult is the outcome of one recommendation pipeline run.
type RecommendResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Source          string           `json:"source"` // "AI" or "Cache"
}
