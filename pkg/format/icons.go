package format

import "regexp"

// iconRule maps a normalized-name pattern to a category emoji.
type iconRule struct {
	re   *regexp.Regexp
	icon string
}

// Order matters: the first matching rule wins, same as the original table.
var iconRules = []iconRule{
	{regexp.MustCompile(`cafe|cafeteria|te|infusion`), "☕"},
	{regexp.MustCompile(`bebida|jugo|smoothie|batido`), "🥤"},
	{regexp.MustCompile(`desayuno|brunch`), "🍳"},
	{regexp.MustCompile(`almuerzo|cena|comida|menu|plato`), "🍽️"},
	{regexp.MustCompile(`ensalada|veg|vegetar`), "🥗"},
	{regexp.MustCompile(`hamburg|sandwich|lomito`), "🍔"},
	{regexp.MustCompile(`pizza|fugazza|empanad`), "🍕"},
	{regexp.MustCompile(`pasta|fideo|raviol|noqui`), "🍝"},
	{regexp.MustCompile(`carne|asado|parrill|pollo|milanes`), "🥩"},
	{regexp.MustCompile(`pescado|marisco|atun|salmon`), "🐟"},
	{regexp.MustCompile(`postre|dulce|helado|torta|budin`), "🍰"},
	{regexp.MustCompile(`snack|picada|papa`), "🍟"},
	{regexp.MustCompile(`fruta`), "🍎"},
	{regexp.MustCompile(`vino|cerveza|coctel|tragos|licor`), "🍷"},
	{regexp.MustCompile(`promo|promocion|especial|recomend`), "⭐"},
}

// CategoryIcon picks a decorative emoji for a category name, or "" when no
// rule matches.
func CategoryIcon(name string) string {
	normalized := Normalize(name)
	for _, rule := range iconRules {
		if rule.re.MatchString(normalized) {
			return rule.icon
		}
	}
	return ""
}
