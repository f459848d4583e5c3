package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/organicstore/storefront/catalog/pkg/response"
)

// ErrFeedTooShort means the CSV had no header row plus at least one data row.
var ErrFeedTooShort = errors.New("feed must have a header row and at least one data row")

var nonNumeric = regexp.MustCompile(`[^0-9.,]`)

// ParseCSV converts a spreadsheet CSV export into catalog products. Headers
// are matched case-insensitively against keyword substrings; rows without a
// name are dropped; malformed numeric fields default to zero instead of
// failing the row.
func ParseCSV(text string) ([]response.Product, error) {
	rows := []string{}
	for _, row := range strings.Split(text, "\n") {
		if strings.TrimSpace(row) == "" {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) < 2 {
		return nil, ErrFeedTooShort
	}

	headers := splitRow(rows[0])
	products := []response.Product{}
	for i := 1; i < len(rows); i++ {
		values := splitRow(rows[i])
		if allEmpty(values) {
			continue
		}

		product := mapRow(headers, values)
		if product.Name == "" {
			continue
		}
		product.ID = i
		products = append(products, product)
	}
	return products, nil
}

// splitRow is a quote-aware comma splitter: a double quote toggles quoted
// mode, a comma separates fields only outside quotes, the final field is
// emitted without a trailing separator.
func splitRow(row string) []string {
	values := []string{}
	var current strings.Builder
	inQuotes := false

	for _, ch := range row {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	values = append(values, current.String())
	return values
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}

func mapRow(headers []string, values []string) response.Product {
	product := response.Product{Price: decimal.Zero}
	for i, header := range headers {
		cleanHeader := strings.ToLower(strings.TrimSpace(header))
		value := ""
		if i < len(values) {
			value = strings.TrimSpace(values[i])
		}

		switch {
		case strings.Contains(cleanHeader, "nombre") || strings.Contains(cleanHeader, "producto"):
			product.Name = value
		case strings.Contains(cleanHeader, "precio"):
			product.Price = parsePrice(value)
		case strings.Contains(cleanHeader, "stock") ||
			strings.Contains(cleanHeader, "cantidad") ||
			strings.Contains(cleanHeader, "disponible"):
			product.Stock = max(0, leadingInt(value))
		case strings.Contains(cleanHeader, "descripcion") || strings.Contains(cleanHeader, "descripción"):
			product.Description = value
		case strings.Contains(cleanHeader, "categoria") || strings.Contains(cleanHeader, "categoría"):
			product.Category = value
		case strings.Contains(cleanHeader, "imagen") || strings.Contains(cleanHeader, "foto"):
			product.Image = value
		default:
			if product.Extra == nil {
				product.Extra = map[string]string{}
			}
			product.Extra[cleanHeader] = value
		}
	}
	return product
}

// parsePrice strips every character that is not a digit, comma or period,
// treats the first comma as the decimal separator and parses the leading
// numeric run. Anything unparseable is worth zero.
func parsePrice(raw string) decimal.Decimal {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	numeric := leadingFloat(cleaned)
	if numeric == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(numeric)
	if err != nil {
		return decimal.Zero
	}
	return price
}

func leadingFloat(s string) string {
	end := 0
	seenDot := false
	seenDigit := false
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' {
			seenDigit = true
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if !seenDigit {
		return ""
	}
	numeric := strings.TrimSuffix(s[:end], ".")
	if strings.HasPrefix(numeric, ".") {
		numeric = "0" + numeric
	}
	return numeric
}

func leadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	start := 0
	negative := false
	if start < len(s) && (s[start] == '+' || s[start] == '-') {
		negative = s[start] == '-'
		start++
	}
	var n int64
	seenDigit := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			break
		}
		seenDigit = true
		n = n*10 + int64(ch-'0')
	}
	if !seenDigit {
		return 0
	}
	if negative {
		return -n
	}
	return n
}
