package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoundMoney rounds a fractional amount to the nearest whole currency
// unit, half away from zero. Quoted unit prices are rounded with this
// before any multiplication by quantity.
func RoundMoney(x float64) int64 {
	return int64(math.Round(x))
}

// FormatVND renders an amount the way the storefront shows prices:
// thousands with a K suffix, e.g. 150000 -> "150K", 2600000 -> "2,600K".
func FormatVND(amount int64) string {
	k := RoundMoney(float64(amount) / 1000.0)
	return formatThousand(k) + "K"
}

// FormatVNDFull renders the full amount with thousand separators and
// currency suffix, e.g. 1690000 -> "1.690.000đ". Used on vouchers.
func FormatVNDFull(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%sđ", sign, formatThousandSep(amount, '.'))
}

func formatThousand(n int64) string {
	if n < 0 {
		return "-" + formatThousand(-n)
	}
	return formatThousandSep(n, ',')
}

func formatThousandSep(n int64, sep byte) string {
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(sep)
		}
		out.WriteRune(c)
	}
	return out.String()
}
