package booking

import (
	"fmt"
	"strings"
)

// slotPrices is the authoritative per-slot price table. The widget shows
// the same table for display, but the stored amount is always computed
// here from the selected slots; a client-submitted total is ignored.
var slotPrices = map[string]float64{
	"9:00":  40,
	"10:00": 40,
	"11:00": 40,
	"12:00": 40,
	"13:00": 40,
	"14:00": 40,
	"15:00": 40,
	"16:00": 40,
	"17:00": 35,
	"18:00": 35,
	"19:00": 35,
	"20:00": 35,
}

// normalizeSlot canonicalizes a slot key: "09:00" and "9:00" name the
// same slot.
func normalizeSlot(slot string) string {
	slot = strings.TrimSpace(slot)
	if len(slot) == 5 && slot[0] == '0' {
		return slot[1:]
	}
	return slot
}

// QuoteSlots returns the total price for the given time slots. An unknown
// slot fails the whole quote.
func QuoteSlots(slots []string) (float64, error) {
	var total float64
	for _, slot := range slots {
		price, ok := slotPrices[normalizeSlot(slot)]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
		}
		total += price
	}
	return total, nil
}
