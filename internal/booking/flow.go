package booking

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Step identifies a stage of the booking flow.
type Step int

const (
	StepRoomAndDates Step = iota
	StepGuestDetails
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepRoomAndDates:
		return "room_and_dates"
	case StepGuestDetails:
		return "guest_details"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

// ErrNotAtPayment is returned when Submit is called before the payment step.
var ErrNotAtPayment = errors.New("submission is only allowed from the payment step")

// Flow drives one booking session through the three steps. All transitions
// are synchronous responses to user input; there is one live flow per session
// and discarding it requires no cleanup.
//
// The flow owns a Draft and applies its reducers, so every invariant the
// reducers keep (date ordering, toggle idempotence) holds here too.
type Flow struct {
	catalog *Catalog
	draft   Draft
	step    Step
	now     func() time.Time
}

// NewFlow starts a booking session at the room-and-dates step.
func NewFlow(c *Catalog) *Flow {
	return &Flow{
		catalog: c,
		draft:   NewDraft(),
		now:     time.Now,
	}
}

// Step returns the current step.
func (f *Flow) Step() Step {
	return f.step
}

// Draft returns a snapshot of the accumulated state.
func (f *Flow) Draft() Draft {
	return f.draft
}

// Quote returns the current price breakdown.
func (f *Flow) Quote() Quote {
	return ComputeQuote(f.draft, f.catalog)
}

// SetCheckIn applies a check-in selection. Past dates are rejected and leave
// the draft untouched.
func (f *Flow) SetCheckIn(day time.Time) error {
	next, err := f.draft.WithCheckIn(day, f.now())
	if err != nil {
		return err
	}

	f.draft = next
	return nil
}

// SetCheckOut applies a check-out selection.
func (f *Flow) SetCheckOut(day time.Time) error {
	next, err := f.draft.WithCheckOut(day)
	if err != nil {
		return err
	}

	f.draft = next
	return nil
}

// SetGuests applies a party-size selection.
func (f *Flow) SetGuests(g GuestCount) error {
	next, err := f.draft.WithGuests(g)
	if err != nil {
		return err
	}

	f.draft = next
	return nil
}

// SelectRoomType chooses a room type, replacing any previous choice.
func (f *Flow) SelectRoomType(id string) error {
	if _, ok := f.catalog.RoomType(id); !ok {
		fe := newFieldError()
		fe.add("roomTypeId", "unknown room type")
		return fe
	}

	f.draft = f.draft.SelectRoomType(id)
	return nil
}

// ToggleService adds or removes an add-on service. Services are independently
// selectable at any step.
func (f *Flow) ToggleService(id string) error {
	if _, ok := f.catalog.Service(id); !ok {
		fe := newFieldError()
		fe.add("serviceId", "unknown service")
		return fe
	}

	f.draft = f.draft.ToggleService(id)
	return nil
}

// SetContact records the lead guest's contact details.
func (f *Flow) SetContact(c Contact) {
	f.draft = f.draft.WithContact(c)
}

// SetSpecialRequests records the free-text special requests.
func (f *Flow) SetSpecialRequests(text string) {
	f.draft = f.draft.WithSpecialRequests(text)
}

// SetPaymentMethod records the payment method choice.
func (f *Flow) SetPaymentMethod(m PaymentMethod) error {
	next, err := f.draft.WithPaymentMethod(m)
	if err != nil {
		return err
	}

	f.draft = next
	return nil
}

// Advance moves to the next step when the current step's required fields are
// complete. An incomplete step returns a FieldError naming the gaps and the
// step does not change; this is guidance for the user, never a hard failure.
func (f *Flow) Advance() error {
	switch f.step {
	case StepRoomAndDates:
		if err := f.requireRoomAndDates().orNil(); err != nil {
			return err
		}
		f.step = StepGuestDetails
	case StepGuestDetails:
		if err := f.requireContact().orNil(); err != nil {
			return err
		}
		f.step = StepPayment
	case StepPayment:
		// Terminal step; submission leaves the flow instead.
	}

	return nil
}

// Retreat moves back one step. It is always permitted and never clears
// already-entered data.
func (f *Flow) Retreat() {
	if f.step > StepRoomAndDates {
		f.step--
	}
}

// Submit finalizes the flow from the payment step, producing the reservation
// request for the persistence API. The flow itself is discarded by the caller
// afterwards.
func (f *Flow) Submit() (*ReservationRequest, error) {
	if f.step != StepPayment {
		return nil, ErrNotAtPayment
	}

	if !ValidPaymentMethod(f.draft.PaymentMethod) {
		fe := newFieldError()
		fe.add("paymentMethod", "choose a payment method")
		return nil, fe
	}

	return Assemble(f.draft, f.catalog)
}

func (f *Flow) requireRoomAndDates() *FieldError {
	fe := newFieldError()

	if f.draft.RoomTypeID == "" {
		fe.add("roomTypeId", "select a room type")
	}

	if !f.draft.DatesComplete() {
		fe.add("dates", "select check-in and check-out dates")
	}

	return fe
}

func (f *Flow) requireContact() *FieldError {
	fe := newFieldError()

	if strings.TrimSpace(f.draft.Contact.FullName) == "" {
		fe.add("fullName", "provide the guest name")
	}

	if _, err := mail.ParseAddress(f.draft.Contact.Email); err != nil {
		fe.add("email", "provide a valid email")
	}

	if strings.TrimSpace(f.draft.Contact.Phone) == "" {
		fe.add("phone", "provide a phone number")
	}

	return fe
}
