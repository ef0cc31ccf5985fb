package utils

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// RupeesPerUnit converts backend prices into the rupee amounts shown to
// shoppers.
const RupeesPerUnit = 30

// FormatPrice renders a backend price in whole rupees with Indian digit
// grouping, e.g. 5000 -> "₹1,50,000".
func FormatPrice(price float64) string {
	rupees := int64(math.Round(price * RupeesPerUnit))
	sign := ""
	if rupees < 0 {
		sign = "-"
		rupees = -rupees
	}
	return sign + "₹" + groupIndian(strconv.FormatInt(rupees, 10))
}

// groupIndian groups the last three digits, then pairs: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	out := ""
	for len(head) > 2 {
		out = "," + head[len(head)-2:] + out
		head = head[:len(head)-2]
	}
	return head + out + "," + tail
}

// OrderNumber is the shopper-facing confirmation number shown after
// checkout: "BM" plus the last eight digits of the Unix millisecond clock.
func OrderNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return fmt.Sprintf("BM%s", millis)
}
