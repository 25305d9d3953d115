package booking

import "time"

// ServiceLine is a snapshotted add-on on a reservation. Name and price are
// copied from the catalog at assembly time so the record stays
// self-describing if catalog prices later change.
type ServiceLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ReservationRequest is the flattened payload handed to the persistence
// layer. TotalAmount is server-recomputable from the other fields.
type ReservationRequest struct {
	RoomTypeID       string        `json:"roomTypeId"`
	CheckIn          time.Time     `json:"checkIn"`
	CheckOut         time.Time     `json:"checkOut"`
	Adults           int           `json:"adults"`
	Children         int           `json:"children"`
	SelectedServices []ServiceLine `json:"selectedServices"`
	SpecialRequests  string        `json:"specialRequests"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	TotalAmount      float64       `json:"totalAmount"`
}

// Assemble converts a draft into a ReservationRequest. It re-validates the
// required state even though the flow gates it, because assembly can be
// invoked out of band: missing dates or room type come back as a FieldError,
// never a partially filled request. Assemble is a pure transform; it performs
// no network call or navigation.
func Assemble(d Draft, c *Catalog) (*ReservationRequest, error) {
	fe := newFieldError()

	if d.CheckIn.IsZero() || d.CheckOut.IsZero() {
		fe.add("dates", "check-in and check-out dates are required")
	}

	if _, ok := c.RoomType(d.RoomTypeID); !ok {
		fe.add("roomTypeId", "select a room type")
	}

	if err := fe.orNil(); err != nil {
		return nil, err
	}

	lines := make([]ServiceLine, 0, len(d.ServiceIDs))
	for _, id := range d.ServiceIDs {
		svc, ok := c.Service(id)
		if !ok {
			continue
		}
		lines = append(lines, ServiceLine{ID: svc.ID, Name: svc.Name, Price: svc.FlatPrice})
	}

	return &ReservationRequest{
		RoomTypeID:       d.RoomTypeID,
		CheckIn:          d.CheckIn,
		CheckOut:         d.CheckOut,
		Adults:           d.Guests.Adults,
		Children:         d.Guests.Children,
		SelectedServices: lines,
		SpecialRequests:  d.SpecialRequests,
		PaymentMethod:    d.PaymentMethod,
		TotalAmount:      ComputeTotal(d, c),
	}, nil
}
