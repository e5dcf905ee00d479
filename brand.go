package leximorph

// Branding printed at the top of exported documents.
const (
	BrandName = "LexiMorph"
	BrandURL  = "https://omnitrix.ai"
)

// Rule is the horizontal separator line used in exported documents.
const Rule = "________________________________________"
