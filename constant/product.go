package constant

// Product categories.
const (
	CategoryFruits          = "fruits"
	CategoryVegetables      = "vegetables"
	CategoryCoconutProducts = "coconut-products"
	CategoryOrganic         = "organic"
)

// Units of measure.
const (
	UnitKg     = "kg"
	UnitTons   = "tons"
	UnitPieces = "pieces"
	UnitBoxes  = "boxes"
)

// Currencies.
const (
	CurrencyUSD = "USD"
	CurrencyLKR = "LKR"
	CurrencyEUR = "EUR"
)

// DefaultOrigin is stamped on products created without an explicit origin.
const DefaultOrigin = "Sri Lanka"

// MaxImageSize is the upper bound for an uploaded product image.
const MaxImageSize = 5 * 1024 * 1024
