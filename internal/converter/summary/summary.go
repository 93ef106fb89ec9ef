// Package summary renders the merchant-facing order text and the WhatsApp
// link that carries it.
package summary

import (
	"bytes"
	"embed"
	"math"
	"net/url"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/you-humble/frio-catalog/internal/model"
)

var (
	//go:embed templates/order_summary.tmpl
	orderSummaryFS       embed.FS
	orderSummaryTemplate = template.Must(
		template.New("order_summary.tmpl").
			Funcs(template.FuncMap{"money": FormatMoney}).
			ParseFS(orderSummaryFS, "templates/order_summary.tmpl"),
	)
)

type line struct {
	Name        string
	Quantity    int64
	SubtotalUSD float64
	SubtotalARS float64
}

type orderSummary struct {
	Lines         []line
	TotalARS      float64
	ExchangeRate  float64
	CustomerName  string
	CustomerPhone string
}

func BuildOrderSummary(o *model.Order) (string, error) {
	s := orderSummary{
		Lines:         make([]line, 0, len(o.Items)),
		TotalARS:      o.TotalARS,
		ExchangeRate:  o.ExchangeRate,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
	}
	for _, it := range o.Items {
		s.Lines = append(s.Lines, line{
			Name:        it.Name,
			Quantity:    it.Quantity,
			SubtotalUSD: it.PriceUSD * float64(it.Quantity),
			SubtotalARS: it.PriceARS * float64(it.Quantity),
		})
	}

	var buf bytes.Buffer
	if err := orderSummaryTemplate.Execute(&buf, s); err != nil {
		return "", err
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// ContactLink builds a wa.me link to phone with text prefilled.
// Everything but digits is stripped from phone.
func ContactLink(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	return "https://wa.me/" + digits + "?text=" + encodeURIComponent(text)
}

// FormatMoney renders v with two decimals in es-AR style: 1.234.567,89.
// NaN and infinities render as "-".
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}

	fixed := decimal.NewFromFloat(v).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)

	return b.String()
}

func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
