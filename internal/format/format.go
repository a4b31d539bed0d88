// internal/format/format.go
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atelier-gestor/atelier/internal/models"
)

var (
	nonDigits     = regexp.MustCompile(`\D`)
	phoneShape    = regexp.MustCompile(`^(\d{2})(\d{4,5})(\d{4})$`)
	// 1.000 and 1.234.567: dots grouping exactly three digits
	thousandsOnly = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)
)

// Phone renders a Brazilian phone as (DD) NNNNN-NNNN. A leading 55 country
// code is dropped. Anything that does not fit is returned unchanged.
func Phone(phone string) string {
	if phone == "" {
		return ""
	}

	cleaned := nonDigits.ReplaceAllString(phone, "")
	if strings.HasPrefix(cleaned, "55") && len(cleaned) >= 12 {
		cleaned = cleaned[2:]
	}

	match := phoneShape.FindStringSubmatch(cleaned)
	if match == nil {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", match[1], match[2], match[3])
}

// Date renders dd/mm/yyyy, or an empty string for a zero date.
func Date(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("02/01/2006")
}

func DatePtr(d *models.Date) string {
	if d == nil {
		return ""
	}
	return Date(*d)
}

// Number renders a value with two decimals, "." for thousands and "," for
// decimals.
func Number(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

func Currency(value decimal.Decimal) string {
	return "R$ " + Number(value)
}

// ParseNumber reads a number typed in pt-BR notation ("1.234,56", "R$ 10,5")
// or plain notation ("10.5"). Without a comma, dots that group exactly three
// digits are thousands separators, so "1.000" is one thousand. Blank input is
// zero.
func ParseNumber(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "R$")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return decimal.Zero, nil
	}

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else if thousandsOnly.MatchString(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	number, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q: %w", value, err)
	}
	return number, nil
}
