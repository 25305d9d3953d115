package booking

import (
	"math"
	"time"
)

// Quote is the derived price breakdown for a draft. It is recomputed fresh on
// every call; nothing is cached.
type Quote struct {
	Nights       int     `json:"nights"`
	RoomCost     float64 `json:"roomCost"`
	ServicesCost float64 `json:"servicesCost"`
	Total        float64 `json:"total"`
}

// Nights returns the billable night count for a stay. Partial days are
// rounded up (a late check-out still bills the night), with a floor of one
// night for any valid range. An unset or inverted range yields 0.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return 0
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}

	return nights
}

// ComputeQuote derives the price breakdown from the draft and catalog.
// While the dates or room type are incomplete it returns a zero quote rather
// than an error so a summary panel stays renderable. Selected service ids not
// present in the catalog contribute nothing.
func ComputeQuote(d Draft, c *Catalog) Quote {
	room, ok := c.RoomType(d.RoomTypeID)
	if !ok || !d.DatesComplete() {
		return Quote{}
	}

	nights := Nights(d.CheckIn, d.CheckOut)

	q := Quote{
		Nights:   nights,
		RoomCost: float64(nights) * room.NightlyPrice,
	}

	for _, id := range d.ServiceIDs {
		if svc, ok := c.Service(id); ok {
			q.ServicesCost += svc.FlatPrice
		}
	}

	q.Total = q.RoomCost + q.ServicesCost

	return q
}

// ComputeTotal is the total-only shorthand for ComputeQuote.
func ComputeTotal(d Draft, c *Catalog) float64 {
	return ComputeQuote(d, c).Total
}
