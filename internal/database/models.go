package database

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the lifecycle state of a stored reservation.
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCheckedIn ReservationStatus = "checked_in"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Guest represents a guest record. Guests are keyed by email and upserted at
// reservation time.
type Guest struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Reservation represents a stored reservation.
type Reservation struct {
	ID              uuid.UUID            `json:"id"`
	GuestID         uuid.UUID            `json:"guestId"`
	RoomTypeID      string               `json:"roomTypeId"`
	CheckIn         time.Time            `json:"checkIn"`
	CheckOut        time.Time            `json:"checkOut"`
	Adults          int                  `json:"adults"`
	Children        int                  `json:"children"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	PaymentMethod   string               `json:"paymentMethod"`
	TotalAmount     float64              `json:"totalAmount"`
	Status          ReservationStatus    `json:"status"`
	Services        []ReservationService `json:"services,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// ReservationService is a priced add-on line attached to a reservation. Name
// and price are stored as charged, independent of later catalog edits.
type ReservationService struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	ServiceID     string    `json:"serviceId"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
}

// Room represents a physical numbered room in the inventory, as opposed to a
// bookable room type.
type Room struct {
	RoomNo        int       `json:"roomNo"`
	RoomTypeID    string    `json:"roomTypeId"`
	PerNightPrice float64   `json:"perNightPrice"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ServiceRecord is the persisted form of a catalog add-on, managed through
// the admin endpoints.
type ServiceRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
