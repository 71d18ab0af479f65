// Package catalog holds the static service and promo-code lookup tables.
// Both are immutable after process start; handlers and services read them
// through the resolver functions only.
package catalog

import "strings"

// services maps the short service code sent by the frontend to its
// display name.
var services = map[string]string{
	"1": "Exterior Wash & Wax",
	"2": "Interior Detailing",
	"3": "Premium Full Detail",
	"4": "Engine Bay Cleaning",
	"5": "Home Cleaning",
	"6": "Event Cleaning",
	"7": "Contract Cleaning",
	"8": "New Home Cleaning",
}

// promoCodes maps an uppercase promo code to its discount percentage.
var promoCodes = map[string]int{
	"GOLDY":      30,
	"WELCOME10":  10,
	"SAVE20":     20,
	"FIRSTCLEAN": 15,
}

// ResolveService returns the display name for a service code. Unknown codes
// pass through unresolved so new frontend codes keep working.
func ResolveService(code string) string {
	if name, ok := services[code]; ok {
		return name
	}
	return code
}

// ResolvePromo looks up a promo code case-insensitively. Unknown or empty
// codes yield a zero discount.
func ResolvePromo(code string) (int, bool) {
	discount, ok := promoCodes[strings.ToUpper(strings.TrimSpace(code))]
	return discount, ok
}
