package booking

import "time"

// Guest count bounds. Both bounds come from the public booking form; the
// adults floor is 1 because a room cannot be booked for children alone.
const (
	MinAdults   = 1
	MaxAdults   = 10
	MinChildren = 0
	MaxChildren = 10
)

// PaymentMethod is the guest's chosen payment channel.
type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit-card"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank-transfer"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCreditCard, PaymentPayPal, PaymentBankTransfer:
		return true
	}
	return false
}

// GuestCount holds the party size for a stay.
type GuestCount struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// Contact holds the lead guest's contact details, captured on the guest
// details step.
type Contact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
}

// Draft is the in-progress state of a reservation being assembled across the
// booking steps. It is an immutable value: every mutation is a reducer that
// returns a new Draft, which keeps the booking invariants testable as pure
// functions. A zero Draft is a valid empty draft; zero CheckIn/CheckOut mean
// "not chosen yet".
type Draft struct {
	CheckIn  time.Time
	CheckOut time.Time

	Guests GuestCount

	RoomTypeID string
	ServiceIDs []string

	Contact         Contact
	SpecialRequests string
	PaymentMethod   PaymentMethod
}

// NewDraft returns an empty draft with the form's default party size.
func NewDraft() Draft {
	return Draft{Guests: GuestCount{Adults: 2}}
}

// SelectRoomType replaces any previously chosen room type (single-select).
func (d Draft) SelectRoomType(id string) Draft {
	d.RoomTypeID = id
	return d
}

// ToggleService adds the service id if absent and removes it if present.
// Toggling twice with the same id restores the original selection. Insertion
// order of the remaining ids is preserved.
func (d Draft) ToggleService(id string) Draft {
	for i, sid := range d.ServiceIDs {
		if sid == id {
			next := make([]string, 0, len(d.ServiceIDs)-1)
			next = append(next, d.ServiceIDs[:i]...)
			next = append(next, d.ServiceIDs[i+1:]...)
			d.ServiceIDs = next
			return d
		}
	}

	next := make([]string, len(d.ServiceIDs), len(d.ServiceIDs)+1)
	copy(next, d.ServiceIDs)
	d.ServiceIDs = append(next, id)
	return d
}

// HasService reports whether the service id is currently selected.
func (d Draft) HasService(id string) bool {
	for _, sid := range d.ServiceIDs {
		if sid == id {
			return true
		}
	}
	return false
}

// WithGuests replaces the party size, rejecting out-of-bounds counts.
func (d Draft) WithGuests(g GuestCount) (Draft, error) {
	fe := newFieldError()

	if g.Adults < MinAdults || g.Adults > MaxAdults {
		fe.add("adults", "adults must be between 1 and 10")
	}

	if g.Children < MinChildren || g.Children > MaxChildren {
		fe.add("children", "children must be between 0 and 10")
	}

	if err := fe.orNil(); err != nil {
		return d, err
	}

	d.Guests = g
	return d, nil
}

// WithContact replaces the lead guest's contact details.
func (d Draft) WithContact(c Contact) Draft {
	d.Contact = c
	return d
}

// WithSpecialRequests replaces the free-text special requests.
func (d Draft) WithSpecialRequests(text string) Draft {
	d.SpecialRequests = text
	return d
}

// WithPaymentMethod replaces the payment method, rejecting unknown tags.
func (d Draft) WithPaymentMethod(m PaymentMethod) (Draft, error) {
	if !ValidPaymentMethod(m) {
		fe := newFieldError()
		fe.add("paymentMethod", "payment method must be one of credit-card, paypal, bank-transfer")
		return d, fe
	}

	d.PaymentMethod = m
	return d, nil
}
