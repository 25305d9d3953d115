package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "four night stay",
			checkIn:  date(2025, time.June, 1),
			checkOut: date(2025, time.June, 5),
			want:     4,
		},
		{
			name:     "single night",
			checkIn:  date(2025, time.June, 1),
			checkOut: date(2025, time.June, 2),
			want:     1,
		},
		{
			name:     "partial day rounds up",
			checkIn:  date(2025, time.June, 1),
			checkOut: date(2025, time.June, 2).Add(11 * time.Hour),
			want:     2,
		},
		{
			name:     "unset check-in",
			checkOut: date(2025, time.June, 5),
			want:     0,
		},
		{
			name:    "unset check-out",
			checkIn: date(2025, time.June, 1),
			want:    0,
		},
		{
			name:     "inverted range",
			checkIn:  date(2025, time.June, 5),
			checkOut: date(2025, time.June, 1),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeQuote(t *testing.T) {
	c := testCatalog(t)

	base := Draft{
		CheckIn:    date(2025, time.June, 1),
		CheckOut:   date(2025, time.June, 5),
		RoomTypeID: "deluxe", // 150/night
	}

	tests := []struct {
		name  string
		draft Draft
		want  Quote
	}{
		{
			name:  "room only",
			draft: base,
			want:  Quote{Nights: 4, RoomCost: 600, Total: 600},
		},
		{
			name:  "room plus services",
			draft: base.ToggleService("S1").ToggleService("S2"),
			want:  Quote{Nights: 4, RoomCost: 600, ServicesCost: 35, Total: 635},
		},
		{
			name:  "no room type selected",
			draft: Draft{CheckIn: base.CheckIn, CheckOut: base.CheckOut},
			want:  Quote{},
		},
		{
			name:  "dates incomplete",
			draft: Draft{RoomTypeID: "deluxe", CheckIn: base.CheckIn},
			want:  Quote{},
		},
		{
			name:  "unknown service id contributes nothing",
			draft: Draft{CheckIn: base.CheckIn, CheckOut: base.CheckOut, RoomTypeID: "deluxe", ServiceIDs: []string{"ghost"}},
			want:  Quote{Nights: 4, RoomCost: 600, Total: 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeQuote(tt.draft, c))
		})
	}
}

func TestComputeTotal_MonotonicInServices(t *testing.T) {
	c := testCatalog(t)

	d := Draft{
		CheckIn:    date(2025, time.June, 1),
		CheckOut:   date(2025, time.June, 5),
		RoomTypeID: "deluxe",
	}

	prev := ComputeTotal(d, c)
	for _, svc := range c.Services() {
		d = d.ToggleService(svc.ID)
		cur := ComputeTotal(d, c)
		assert.GreaterOrEqual(t, cur, prev, "adding %s decreased the total", svc.ID)
		prev = cur
	}
}

func TestComputeTotal_ToggleOffRestoresTotal(t *testing.T) {
	c := testCatalog(t)

	d := Draft{
		CheckIn:    date(2025, time.June, 1),
		CheckOut:   date(2025, time.June, 5),
		RoomTypeID: "deluxe",
	}

	d = d.ToggleService("S1")
	assert.Equal(t, 610.0, ComputeTotal(d, c))

	d = d.ToggleService("S1")
	assert.False(t, d.HasService("S1"))
	assert.Equal(t, 600.0, ComputeTotal(d, c))
}
