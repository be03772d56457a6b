package warranty

import "strings"

// prefixRule binds a SKU prefix to a product type. The table is ordered;
// the longest matching prefix wins so "TRHX" beats "TRH".
type prefixRule struct {
	prefix      string
	productType string
}

// skuPrefixTable is the fixed mapping from SKU prefixes to product types.
// SKUs that match nothing resolve to FallbackProductType.
var skuPrefixTable = []prefixRule{
	{"TRHX", "TRAPO HEX PRO"},
	{"TRH", "TRAPO HEX"},
	{"TRC", "TRAPO CLASSIC"},
	{"TRX", "TRAPO XTREME"},
	{"OXWP", "WIPER"},
	{"OXDC", "DASHCAM"},
	{"TLC", "COATING"},
}

// ResolveProductType maps a SKU to its product type by longest-matching
// prefix.
func ResolveProductType(sku string) string {
	sku = strings.ToUpper(strings.TrimSpace(sku))

	best := ""
	productType := FallbackProductType
	for _, rule := range skuPrefixTable {
		if strings.HasPrefix(sku, rule.prefix) && len(rule.prefix) > len(best) {
			best = rule.prefix
			productType = rule.productType
		}
	}
	return productType
}
