package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var amountRegex = regexp.MustCompile(`\d+(\.\d+)?`)

// ParsePrice pulls the first amount out of display text such as
// "Starts Rs. 18,999". It returns 0 when the text carries no number.
func ParsePrice(text string) int64 {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(text)
	match := amountRegex.FindString(cleaned)
	if match == "" {
		return 0
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil || f > math.MaxInt64/1000 {
		return 0
	}
	return int64(math.Round(f))
}

// FormatPrice renders a stored price without trailing zeros.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// FormatINR groups digits the Indian way: 1,23,45,678.
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return "₹" + sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return "₹" + sign + strings.Join(groups, ",") + "," + tail
}

// ToPaise converts a rupee amount to the gateway's minor unit.
func ToPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}
