package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	c := testCatalog(t)

	valid := Draft{
		CheckIn:    date(2025, time.June, 1),
		CheckOut:   date(2025, time.June, 5),
		Guests:     GuestCount{Adults: 2, Children: 1},
		RoomTypeID: "deluxe",
		ServiceIDs: []string{"S2", "S1"},
		Contact: Contact{
			FullName: "Nimal Perera",
			Email:    "nimal@example.com",
			Phone:    "+94 77 123 4567",
		},
		SpecialRequests: "sea-facing floor if possible",
		PaymentMethod:   PaymentPayPal,
	}

	t.Run("complete draft assembles", func(t *testing.T) {
		req, err := Assemble(valid, c)
		require.NoError(t, err)

		assert.Equal(t, "deluxe", req.RoomTypeID)
		assert.Equal(t, valid.CheckIn, req.CheckIn)
		assert.Equal(t, valid.CheckOut, req.CheckOut)
		assert.Equal(t, 2, req.Adults)
		assert.Equal(t, 1, req.Children)
		assert.Equal(t, PaymentPayPal, req.PaymentMethod)
		assert.Equal(t, 635.0, req.TotalAmount)

		// Service lines are snapshotted in selection order with resolved
		// names and prices, so the record stays self-describing.
		require.Len(t, req.SelectedServices, 2)
		assert.Equal(t, ServiceLine{ID: "S2", Name: "Spa Package", Price: 25}, req.SelectedServices[0])
		assert.Equal(t, ServiceLine{ID: "S1", Name: "Airport Transfer", Price: 10}, req.SelectedServices[1])
	})

	t.Run("missing check-in is a field error", func(t *testing.T) {
		d := valid
		d.CheckIn = time.Time{}

		req, err := Assemble(d, c)
		require.Error(t, err)
		assert.Nil(t, req, "no partially filled request on failure")

		fe := AsFieldError(err)
		require.NotNil(t, fe)
		assert.True(t, fe.Has("dates"))
	})

	t.Run("missing check-out is a field error", func(t *testing.T) {
		d := valid
		d.CheckOut = time.Time{}

		_, err := Assemble(d, c)
		require.Error(t, err)
		assert.True(t, AsFieldError(err).Has("dates"))
	})

	t.Run("missing room type is a field error", func(t *testing.T) {
		d := valid
		d.RoomTypeID = ""

		_, err := Assemble(d, c)
		require.Error(t, err)
		assert.True(t, AsFieldError(err).Has("roomTypeId"))
	})

	t.Run("unknown service ids are dropped from the snapshot", func(t *testing.T) {
		d := valid
		d.ServiceIDs = []string{"S1", "ghost"}

		req, err := Assemble(d, c)
		require.NoError(t, err)
		require.Len(t, req.SelectedServices, 1)
		assert.Equal(t, "S1", req.SelectedServices[0].ID)
		assert.Equal(t, 610.0, req.TotalAmount)
	})
}
