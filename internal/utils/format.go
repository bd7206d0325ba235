package utils

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCoins renders a coin balance with thousands separators, e.g. 1,234,567
func FormatCoins(coins int64) string {
	return printer.Sprintf("%d", coins)
}

// FormatWait renders a duration as HH:MM:SS, rounding down to whole seconds.
// Hours are not wrapped at 24.
func FormatWait(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
