package constants

import (
	"strings"
)

// Category buckets purchased ingredients for cost reporting.
type Category string

const (
	Meat     Category = "Meat"
	Seafood  Category = "Seafood"
	Dairy    Category = "Dairy"
	Produce  Category = "Produce"
	Pantry   Category = "Pantry"
	Beverage Category = "Beverage"
	Other    Category = "Other"
)

var allCategories = []Category{
	Meat,
	Seafood,
	Dairy,
	Produce,
	Pantry,
	Beverage,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"beef":      Meat,
		"pork":      Meat,
		"poultry":   Meat,
		"gibier":    Meat,
		"fish":      Seafood,
		"shellfish": Seafood,
		"cheese":    Dairy,
		"butter":    Dairy,
		"milk":      Dairy,
		"vegetable": Produce,
		"fruit":     Produce,
		"grocery":   Pantry,
		"dry goods": Pantry,
		"wine":      Beverage,
		"drink":     Beverage,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}

// itemKeywords drives CategorizeItem. Ordered so that the more specific
// buckets win over the generic ones when an item name matches several.
var itemKeywords = []struct {
	category Category
	keywords []string
}{
	{Meat, []string{"和牛", "ヒレ", "wagyu", "tenderloin", "beef", "鴨", "ジビエ", "鹿", "猪"}},
	{Seafood, []string{"キャビア", "キャヴィア", "kaviari", "caviar", "うに", "ウニ", "雲丹", "鮪", "マグロ", "まぐろ", "魚", "海老", "蟹"}},
	{Dairy, []string{"バター", "ブール", "パレット", "ﾊﾟﾚｯﾄ", "チーズ", "butter", "cheese", "牛乳", "クリーム"}},
	{Produce, []string{"ジロール", "茸", "きのこ", "野菜", "青果", "果", "芋", "トマト"}},
	{Pantry, []string{"ヴィネガー", "ビネガー", "vinegar", "米", "塩", "砂糖", "小麦", "油"}},
	{Beverage, []string{"ワイン", "wine", "シャンパーニュ", "ジュース"}},
}

// CategorizeItem assigns an ingredient category from an item name by ordered
// keyword scan. Unmatched names land in Other.
func CategorizeItem(itemName string) Category {
	if itemName == "" {
		return Other
	}
	lowered := strings.ToLower(itemName)
	for _, group := range itemKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return group.category
			}
		}
	}
	return Other
}
