package models

// HighWasteItem describes a purchase the user made in high-waste packaging.
// It is the input of the packaging alternatives suggestion.
type HighWasteItem struct {
	FoodItemName  string `json:"food_item_name"`
	PackagingType string `json:"packaging_type"`
	// PackagingLabel is the human readable name of PackagingType, if known.
	PackagingLabel string `json:"packaging_label,omitempty"`
}

// PackagingAlternative is one suggestion returned by the generative model.
type PackagingAlternative struct {
	FoodItem             string `json:"foodItem"`
	CurrentPackaging     string `json:"currentPackaging"`
	SuggestedAlternative string `json:"suggestedAlternative"`
	Reasoning            string `json:"reasoning"`
	ImpactReduction      string `json:"impactReduction"`
	WhereToFind          string `json:"whereToFind"`
	DifficultyLevel      string `json:"difficultyLevel"`
}

// AlternativesResponse is the parsed body produced by the generative model.
type AlternativesResponse struct {
	Alternatives []PackagingAlternative `json:"alternatives"`
}
