package constants

// Strategy identifies which extraction path handles a document. It is
// selected once per session by the vendor detector and passed down the call
// chain; no component re-detects the vendor.
type Strategy string

// Stable values (store these exact strings in DB).
const (
	StrategyHirayama  Strategy = "hirayama"   // Meat Shop Hirayama regex parser
	StrategyFrenchFnB Strategy = "french_fnb" // French F&B Japan regex parser
	StrategyMaruyata  Strategy = "maruyata"   // Maruyata regex parser
	StrategySheet     Strategy = "sheet"      // spreadsheet column-role extraction
	StrategyVision    Strategy = "ai"         // vision-model fallback
	StrategySales     Strategy = "sales"      // POS sales CSV extraction
)

var allStrategies = []Strategy{
	StrategyHirayama,
	StrategyFrenchFnB,
	StrategyMaruyata,
	StrategySheet,
	StrategyVision,
	StrategySales,
}

// StrategiesAsStringSlice returns the stable strategy values for enum
// validation at the schema layer.
func StrategiesAsStringSlice() []string {
	result := make([]string, len(allStrategies))
	for i, s := range allStrategies {
		result[i] = string(s)
	}
	return result
}

// ParseStrategy maps a stored string back to a Strategy.
func ParseStrategy(input string) (Strategy, bool) {
	for _, s := range allStrategies {
		if input == string(s) {
			return s, true
		}
	}
	return "", false
}
