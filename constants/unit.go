package constants

import (
	"strings"
)

// Unit is the canonical unit vocabulary for line-item quantities.
type Unit string

const (
	UnitKg         Unit = "kg"
	UnitG          Unit = "g"
	UnitHundredG   Unit = "100g"
	UnitL          Unit = "L"
	UnitMl         Unit = "ml"
	UnitPiece      Unit = "pc"
	UnitCan        Unit = "can"
	UnitBox        Unit = "box"
	UnitPack       Unit = "pack"
	UnitBottle     Unit = "bottle"
	UnitJar        Unit = "jar"
	UnitBag        Unit = "bag"
)

var allUnits = []Unit{
	UnitKg,
	UnitG,
	UnitHundredG,
	UnitL,
	UnitMl,
	UnitPiece,
	UnitCan,
	UnitBox,
	UnitPack,
	UnitBottle,
	UnitJar,
	UnitBag,
}

// UnitsAsStringSlice returns the canonical unit values for enum validation
// at the schema layer.
func UnitsAsStringSlice() []string {
	result := make([]string, len(allUnits))
	for i, u := range allUnits {
		result[i] = string(u)
	}
	return result
}

// unitSynonyms maps localized unit spellings onto the canonical vocabulary.
// Counting words (個/本/丁) and fish counters (尾/匹/枚) all collapse to pc.
var unitSynonyms = map[string]Unit{
	"キログラム": UnitKg,
	"グラム":   UnitG,
	"リットル":  UnitL,
	"個":     UnitPiece,
	"本":     UnitPiece,
	"丁":     UnitPiece,
	"尾":     UnitPiece,
	"匹":     UnitPiece,
	"枚":     UnitPiece,
	"缶":     UnitCan,
	"箱":     UnitBox,
	"パック":   UnitPack,
	"袋":     UnitBag,
	"瓶":     UnitBottle,
	"ボトル":   UnitBottle,
	"pcs":   UnitPiece,
	"l":     UnitL,
}

// NormalizeUnit maps a raw unit token onto the canonical vocabulary.
// Empty tokens default to pc. Unknown tokens are returned as-is so the
// grams converter can apply its container safety net to them.
func NormalizeUnit(input string) Unit {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return UnitPiece
	}
	if u, ok := unitSynonyms[raw]; ok {
		return u
	}

	lowered := strings.ToLower(raw)
	if u, ok := unitSynonyms[lowered]; ok {
		return u
	}
	for _, u := range allUnits {
		if lowered == strings.ToLower(string(u)) {
			return u
		}
	}
	return Unit(raw)
}

// IsWeightUnit reports whether u converts to grams by a fixed factor.
func IsWeightUnit(u Unit) bool {
	switch u {
	case UnitKg, UnitG, UnitHundredG:
		return true
	}
	return false
}
