package item

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	CoinCopper   = "cp"
	CoinSilver   = "sp"
	CoinGold     = "gp"
	CoinPlatinum = "pp"
)

// NoValue is shown in list cells for absent prices and bulk
const NoValue = "—"

var printer = message.NewPrinter(language.English)

// Price is an item cost in a single coin denomination
type Price struct {
	Amount int    `json:"amount"`
	Coin   string `json:"coin,omitempty"`
	Note   string `json:"note,omitempty"`
}

// CoinValue returns the copper value of one coin; unknown coins count as gold
func CoinValue(coin string) int {
	switch coin {
	case CoinCopper:
		return 1
	case CoinSilver:
		return 10
	case CoinPlatinum:
		return 1000
	default:
		return 100
	}
}

// Value returns the price in copper for comparisons. A nil price is worth 0.
func (p *Price) Value() int {
	if p == nil {
		return 0
	}
	return p.Amount * CoinValue(p.Coin)
}

// Full renders the price for display, e.g. "1,500 gp"
func (p *Price) Full() string {
	if p == nil {
		return NoValue
	}
	coin := p.Coin
	if coin == "" {
		coin = CoinGold
	}
	out := fmt.Sprintf("%s %s", AddCommas(p.Amount), coin)
	if p.Note != "" {
		out += " " + p.Note
	}
	return out
}

// AddCommas formats n with thousands separators
func AddCommas(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatCopper renders a copper amount in the largest coin that divides it
// evenly, never above gold.
func FormatCopper(cp int) string {
	switch {
	case cp == 0:
		return "0 " + CoinGold
	case cp%100 == 0:
		return AddCommas(cp/100) + " " + CoinGold
	case cp%10 == 0:
		return AddCommas(cp/10) + " " + CoinSilver
	}
	return AddCommas(cp) + " " + CoinCopper
}
