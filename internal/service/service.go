package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SathilaT2001/ceylon-serenity-resort/internal/booking"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/database"
)

// DefaultReservationListLimit caps the recent-reservations listing.
const DefaultReservationListLimit = 100

// ErrUnknownRoomType is returned when an inventory room references a room
// type that is not in the catalog.
var ErrUnknownRoomType = errors.New("unknown room type")

// CreateReservationRequest is the flat booking payload accepted from the
// public site. The validator tags cover shape; the booking flow re-checks the
// business rules and recomputes the total server-side.
type CreateReservationRequest struct {
	RoomTypeID      string    `json:"roomTypeId" validate:"required"`
	CheckIn         time.Time `json:"checkIn" validate:"required"`
	CheckOut        time.Time `json:"checkOut" validate:"required"`
	Adults          int       `json:"adults" validate:"required,min=1,max=10"`
	Children        int       `json:"children" validate:"min=0,max=10"`
	ServiceIDs      []string  `json:"serviceIds"`
	FullName        string    `json:"fullName" validate:"required"`
	Email           string    `json:"email" validate:"required,email"`
	Phone           string    `json:"phone" validate:"required"`
	Country         string    `json:"country"`
	SpecialRequests string    `json:"specialRequests"`
	PaymentMethod   string    `json:"paymentMethod" validate:"required,oneof=credit-card paypal bank-transfer"`
}

// Repository is the persistence surface the service needs.
type Repository interface {
	UpsertGuest(ctx context.Context, g *database.Guest) (*database.Guest, error)
	ListGuests(ctx context.Context) ([]database.Guest, error)
	CreateReservation(ctx context.Context, res *database.Reservation) (*database.Reservation, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*database.Reservation, error)
	ListReservations(ctx context.Context, limit int) ([]database.Reservation, error)
	ListRooms(ctx context.Context) ([]database.Room, error)
	CreateRoom(ctx context.Context, room *database.Room) error
	UpdateRoom(ctx context.Context, room *database.Room) error
	DeleteRoom(ctx context.Context, roomNo int) error
	ListServiceRecords(ctx context.Context) ([]database.ServiceRecord, error)
	CreateServiceRecord(ctx context.Context, rec *database.ServiceRecord) error
	UpdateServiceRecord(ctx context.Context, rec *database.ServiceRecord) error
	DeleteServiceRecord(ctx context.Context, id string) error
}

// EventPublisher pushes reservation events to the admin dashboard feed.
type EventPublisher interface {
	PublishReservationCreated(res *database.Reservation, guest *database.Guest)
}

// ReservationService defines the resort's application service interface.
type ReservationService interface {
	RoomTypes(ctx context.Context) []booking.RoomType
	AddOnServices(ctx context.Context) []booking.Service
	CreateReservation(ctx context.Context, req *CreateReservationRequest) (*database.Reservation, error)
	GetReservation(ctx context.Context, id string) (*database.Reservation, error)
	ListReservations(ctx context.Context) ([]database.Reservation, error)
	ListGuests(ctx context.Context) ([]database.Guest, error)
	ListRooms(ctx context.Context) ([]database.Room, error)
	CreateRoom(ctx context.Context, room *database.Room) error
	UpdateRoom(ctx context.Context, room *database.Room) error
	DeleteRoom(ctx context.Context, roomNo int) error
	ListServiceRecords(ctx context.Context) ([]database.ServiceRecord, error)
	CreateServiceRecord(ctx context.Context, rec *database.ServiceRecord) error
	UpdateServiceRecord(ctx context.Context, rec *database.ServiceRecord) error
	DeleteServiceRecord(ctx context.Context, id string) error
}

// reservationServiceImpl implements ReservationService.
type reservationServiceImpl struct {
	catalog   *booking.Catalog
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewReservationService creates a new ReservationService. publisher may be
// nil when no live feed is attached.
func NewReservationService(catalog *booking.Catalog, repo Repository, publisher EventPublisher, logger *zap.Logger) ReservationService {
	return &reservationServiceImpl{
		catalog:   catalog,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *reservationServiceImpl) RoomTypes(ctx context.Context) []booking.RoomType {
	return s.catalog.RoomTypes()
}

func (s *reservationServiceImpl) AddOnServices(ctx context.Context) []booking.Service {
	return s.catalog.Services()
}

// CreateReservation replays the submitted selections through the booking flow
// so every gate the interactive flow enforces holds for out-of-band callers
// too, then persists the assembled reservation. The stored total is always
// the server-side recomputation, never the client's number.
func (s *reservationServiceImpl) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*database.Reservation, error) {
	flow := booking.NewFlow(s.catalog)

	if err := flow.SelectRoomType(req.RoomTypeID); err != nil {
		return nil, err
	}
	if err := flow.SetCheckIn(req.CheckIn); err != nil {
		return nil, err
	}
	if err := flow.SetCheckOut(req.CheckOut); err != nil {
		return nil, err
	}
	if err := flow.SetGuests(booking.GuestCount{Adults: req.Adults, Children: req.Children}); err != nil {
		return nil, err
	}
	for _, id := range req.ServiceIDs {
		if err := flow.ToggleService(id); err != nil {
			return nil, err
		}
	}
	if err := flow.Advance(); err != nil {
		return nil, err
	}

	flow.SetContact(booking.Contact{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Country:  req.Country,
	})
	flow.SetSpecialRequests(req.SpecialRequests)
	if err := flow.Advance(); err != nil {
		return nil, err
	}

	if err := flow.SetPaymentMethod(booking.PaymentMethod(req.PaymentMethod)); err != nil {
		return nil, err
	}

	assembled, err := flow.Submit()
	if err != nil {
		return nil, err
	}

	guest, err := s.repo.UpsertGuest(ctx, &database.Guest{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Country:  req.Country,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert guest: %w", err)
	}

	res := &database.Reservation{
		GuestID:         guest.ID,
		RoomTypeID:      assembled.RoomTypeID,
		CheckIn:         assembled.CheckIn,
		CheckOut:        assembled.CheckOut,
		Adults:          assembled.Adults,
		Children:        assembled.Children,
		SpecialRequests: assembled.SpecialRequests,
		PaymentMethod:   string(assembled.PaymentMethod),
		TotalAmount:     assembled.TotalAmount,
		Status:          database.ReservationStatusConfirmed,
	}
	for _, line := range assembled.SelectedServices {
		res.Services = append(res.Services, database.ReservationService{
			ServiceID: line.ID,
			Name:      line.Name,
			Price:     line.Price,
		})
	}

	stored, err := s.repo.CreateReservation(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("store reservation: %w", err)
	}

	s.logger.Info("reservation created",
		zap.String("reservationId", stored.ID.String()),
		zap.String("roomTypeId", stored.RoomTypeID),
		zap.Float64("totalAmount", stored.TotalAmount),
	)

	if s.publisher != nil {
		s.publisher.PublishReservationCreated(stored, guest)
	}

	return stored, nil
}

func (s *reservationServiceImpl) GetReservation(ctx context.Context, id string) (*database.Reservation, error) {
	rid, err := uuid.Parse(id)
	if err != nil {
		return nil, database.ErrNotFound
	}

	return s.repo.GetReservation(ctx, rid)
}

func (s *reservationServiceImpl) ListReservations(ctx context.Context) ([]database.Reservation, error) {
	return s.repo.ListReservations(ctx, DefaultReservationListLimit)
}

func (s *reservationServiceImpl) ListGuests(ctx context.Context) ([]database.Guest, error) {
	return s.repo.ListGuests(ctx)
}

func (s *reservationServiceImpl) ListRooms(ctx context.Context) ([]database.Room, error) {
	return s.repo.ListRooms(ctx)
}

func (s *reservationServiceImpl) CreateRoom(ctx context.Context, room *database.Room) error {
	if _, ok := s.catalog.RoomType(room.RoomTypeID); !ok {
		return fmt.Errorf("room type %q: %w", room.RoomTypeID, ErrUnknownRoomType)
	}

	return s.repo.CreateRoom(ctx, room)
}

func (s *reservationServiceImpl) UpdateRoom(ctx context.Context, room *database.Room) error {
	return s.repo.UpdateRoom(ctx, room)
}

func (s *reservationServiceImpl) DeleteRoom(ctx context.Context, roomNo int) error {
	return s.repo.DeleteRoom(ctx, roomNo)
}

func (s *reservationServiceImpl) ListServiceRecords(ctx context.Context) ([]database.ServiceRecord, error) {
	return s.repo.ListServiceRecords(ctx)
}

func (s *reservationServiceImpl) CreateServiceRecord(ctx context.Context, rec *database.ServiceRecord) error {
	return s.repo.CreateServiceRecord(ctx, rec)
}

func (s *reservationServiceImpl) UpdateServiceRecord(ctx context.Context, rec *database.ServiceRecord) error {
	return s.repo.UpdateServiceRecord(ctx, rec)
}

func (s *reservationServiceImpl) DeleteServiceRecord(ctx context.Context, id string) error {
	return s.repo.DeleteServiceRecord(ctx, id)
}
