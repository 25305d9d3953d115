package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

// Repository handles all database operations.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// --- Guest Operations ---

// UpsertGuest inserts the guest or, when the email is already registered,
// refreshes the contact details and returns the existing record's id.
func (r *Repository) UpsertGuest(ctx context.Context, g *Guest) (*Guest, error) {
	query := `
		INSERT INTO guests (id, full_name, email, phone, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    phone = EXCLUDED.phone,
		    country = EXCLUDED.country,
		    updated_at = NOW()
		RETURNING id, full_name, email, phone, country, created_at, updated_at
	`

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	var out Guest
	err := r.pool.QueryRow(ctx, query, g.ID, g.FullName, g.Email, g.Phone, g.Country).Scan(
		&out.ID, &out.FullName, &out.Email, &out.Phone, &out.Country,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert guest: %w", err)
	}

	return &out, nil
}

// ListGuests returns all guests, newest first.
func (r *Repository) ListGuests(ctx context.Context) ([]Guest, error) {
	query := `
		SELECT id, full_name, email, phone, country, created_at, updated_at
		FROM guests
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query guests: %w", err)
	}
	defer rows.Close()

	var guests []Guest
	for rows.Next() {
		var g Guest
		err := rows.Scan(&g.ID, &g.FullName, &g.Email, &g.Phone, &g.Country, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}

	return guests, nil
}

// --- Reservation Operations ---

// CreateReservation stores the reservation and its service lines in one
// transaction.
func (r *Repository) CreateReservation(ctx context.Context, res *Reservation) (*Reservation, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	if res.Status == "" {
		res.Status = ReservationStatusConfirmed
	}

	insertReservation := `
		INSERT INTO reservations (id, guest_id, room_type_id, check_in, check_out,
		                          adults, children, special_requests, payment_method,
		                          total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = tx.Exec(ctx, insertReservation,
		res.ID, res.GuestID, res.RoomTypeID, res.CheckIn, res.CheckOut,
		res.Adults, res.Children, res.SpecialRequests, res.PaymentMethod,
		res.TotalAmount, res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}

	insertLine := `
		INSERT INTO reservation_services (id, reservation_id, service_id, name, price)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i := range res.Services {
		line := &res.Services[i]
		line.ID = uuid.New()
		line.ReservationID = res.ID

		if _, err := tx.Exec(ctx, insertLine, line.ID, line.ReservationID, line.ServiceID, line.Name, line.Price); err != nil {
			return nil, fmt.Errorf("failed to insert reservation service: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}

	return res, nil
}

// GetReservation returns a reservation with its service lines.
func (r *Repository) GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	query := `
		SELECT id, guest_id, room_type_id, check_in, check_out, adults, children,
		       special_requests, payment_method, total_amount, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var res Reservation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.GuestID, &res.RoomTypeID, &res.CheckIn, &res.CheckOut,
		&res.Adults, &res.Children, &res.SpecialRequests, &res.PaymentMethod,
		&res.TotalAmount, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	lines, err := r.getReservationServices(ctx, id)
	if err != nil {
		return nil, err
	}
	res.Services = lines

	return &res, nil
}

func (r *Repository) getReservationServices(ctx context.Context, reservationID uuid.UUID) ([]ReservationService, error) {
	query := `
		SELECT id, reservation_id, service_id, name, price
		FROM reservation_services
		WHERE reservation_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservation services: %w", err)
	}
	defer rows.Close()

	var lines []ReservationService
	for rows.Next() {
		var l ReservationService
		if err := rows.Scan(&l.ID, &l.ReservationID, &l.ServiceID, &l.Name, &l.Price); err != nil {
			return nil, fmt.Errorf("failed to scan reservation service: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, nil
}

// ListReservations returns reservations newest first, capped at limit.
func (r *Repository) ListReservations(ctx context.Context, limit int) ([]Reservation, error) {
	query := `
		SELECT id, guest_id, room_type_id, check_in, check_out, adults, children,
		       special_requests, payment_method, total_amount, status, created_at, updated_at
		FROM reservations
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []Reservation
	for rows.Next() {
		var res Reservation
		err := rows.Scan(
			&res.ID, &res.GuestID, &res.RoomTypeID, &res.CheckIn, &res.CheckOut,
			&res.Adults, &res.Children, &res.SpecialRequests, &res.PaymentMethod,
			&res.TotalAmount, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

// --- Room Inventory Operations ---

// ListRooms returns the physical room inventory.
func (r *Repository) ListRooms(ctx context.Context) ([]Room, error) {
	query := `
		SELECT room_no, room_type_id, per_night_price, available, created_at, updated_at
		FROM rooms
		ORDER BY room_no
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		var room Room
		err := rows.Scan(&room.RoomNo, &room.RoomTypeID, &room.PerNightPrice, &room.Available, &room.CreatedAt, &room.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// CreateRoom adds a physical room to the inventory.
func (r *Repository) CreateRoom(ctx context.Context, room *Room) error {
	query := `
		INSERT INTO rooms (room_no, room_type_id, per_night_price, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`

	if _, err := r.pool.Exec(ctx, query, room.RoomNo, room.RoomTypeID, room.PerNightPrice, room.Available); err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}

	return nil
}

// UpdateRoom updates a room's price, availability and type.
func (r *Repository) UpdateRoom(ctx context.Context, room *Room) error {
	query := `
		UPDATE rooms
		SET room_type_id = $2, per_night_price = $3, available = $4, updated_at = NOW()
		WHERE room_no = $1
	`

	tag, err := r.pool.Exec(ctx, query, room.RoomNo, room.RoomTypeID, room.PerNightPrice, room.Available)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteRoom removes a room from the inventory.
func (r *Repository) DeleteRoom(ctx context.Context, roomNo int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE room_no = $1`, roomNo)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// --- Service Catalog Operations ---

// ListServiceRecords returns the persisted add-on catalog.
func (r *Repository) ListServiceRecords(ctx context.Context) ([]ServiceRecord, error) {
	query := `
		SELECT id, name, description, price, created_at, updated_at
		FROM services
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	var records []ServiceRecord
	for rows.Next() {
		var rec ServiceRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Price, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// CreateServiceRecord inserts an add-on into the persisted catalog.
func (r *Repository) CreateServiceRecord(ctx context.Context, rec *ServiceRecord) error {
	query := `
		INSERT INTO services (id, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`

	if _, err := r.pool.Exec(ctx, query, rec.ID, rec.Name, rec.Description, rec.Price); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}

	return nil
}

// UpdateServiceRecord updates a persisted add-on.
func (r *Repository) UpdateServiceRecord(ctx context.Context, rec *ServiceRecord) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, price = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, rec.ID, rec.Name, rec.Description, rec.Price)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteServiceRecord removes a persisted add-on.
func (r *Repository) DeleteServiceRecord(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
