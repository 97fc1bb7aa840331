package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// Entity field names. Keys are present in an Entities map only when
// extraction succeeded; absence is meaningful and drives missing-field
// reporting.
const (
	EntityCustomerName  = "customer_name"
	EntityDealAmountUSD = "deal_amount_usd"
	EntityTermMonths    = "term_months"
	EntityDiscountPct   = "discount_pct"
	EntityPaymentTerms  = "payment_terms"
)

// Entities maps entity field names to normalized string values.
type Entities map[string]string

var (
	moneyRE    = regexp.MustCompile(`\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?)\s*(k|K|m|M)?`)
	termRE     = regexp.MustCompile(`(?i)(\d{1,2})\s*(month|months|mo|mos|year|years|yr|yrs)\b`)
	discountRE = regexp.MustCompile(`(?i)(\d{1,2}(?:\.\d+)?)\s*%?\s*(discount|off)\b`)
	customerRE = regexp.MustCompile(`(?i)\bfor\s+([A-Za-z0-9][A-Za-z0-9 &\-_]{1,50})`)
)

// normalizeAmount converts a grouped or ungrouped numeral plus an optional
// magnitude suffix ("k" or "m", case-insensitive) into an integer string,
// e.g. ("120", "k") -> "120000". Returns false if the numeral fails to parse.
func normalizeAmount(amount, suffix string) (string, bool) {
	raw, err := strconv.ParseFloat(strings.ReplaceAll(amount, ",", ""), 64)
	if err != nil {
		return "", false
	}

	switch strings.ToLower(suffix) {
	case "k":
		raw *= 1_000
	case "m":
		raw *= 1_000_000
	}

	// Stored as an integer string for clean downstream use.
	return strconv.FormatInt(int64(raw), 10), true
}

// Extract pulls structured entity fields out of raw request text using
// pattern matching and unit normalization. Each field uses only the first
// match of its pattern; fields whose patterns do not match are omitted.
func Extract(text string) Entities {
	entities := Entities{}

	// Monetary amount (e.g. "$120k").
	if m := moneyRE.FindStringSubmatch(text); m != nil {
		if normalized, ok := normalizeAmount(m[1], m[2]); ok {
			entities[EntityDealAmountUSD] = normalized
		}
	}

	// Term length (e.g. "12 months"); year units convert to months.
	if m := termRE.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			unit := strings.ToLower(m[2])
			if strings.HasPrefix(unit, "year") || strings.HasPrefix(unit, "yr") {
				n *= 12
			}
			entities[EntityTermMonths] = strconv.Itoa(n)
		}
	}

	// Discount (e.g. "15% discount"); raw numeral, not normalized further.
	if m := discountRE.FindStringSubmatch(text); m != nil {
		entities[EntityDiscountPct] = m[1]
	}

	// Counterparty name heuristic: the token sequence after "for",
	// e.g. "Approve $120k deal for Acme".
	if m := customerRE.FindStringSubmatch(text); m != nil {
		entities[EntityCustomerName] = strings.Trim(m[1], " .,")
	}

	return entities
}
