package booking

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID     = errors.New("catalog entry has empty id")
	ErrDuplicateID = errors.New("catalog entry id is not unique")
	ErrNonPositive = errors.New("catalog entry price must be positive")
)

// RoomType is an immutable catalog entry for a bookable room category.
// It is distinct from a physical numbered room.
type RoomType struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	NightlyPrice float64  `json:"nightlyPrice"`
	Capacity     string   `json:"capacity"`
	Features     []string `json:"features"`
	Image        string   `json:"image"`
}

// Service is an immutable catalog entry for a flat-priced add-on.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	FlatPrice   float64 `json:"flatPrice"`
	Icon        string  `json:"icon"`
}

// Catalog holds the validated room-type and service records. Entries are
// validated once here so the pricing and assembly code never needs runtime
// type checks.
type Catalog struct {
	roomTypes  []RoomType
	services   []Service
	roomIdx    map[string]int
	serviceIdx map[string]int
}

// NewCatalog validates the records and builds lookup indices. It rejects
// empty or duplicate ids and non-positive prices.
func NewCatalog(roomTypes []RoomType, services []Service) (*Catalog, error) {
	c := &Catalog{
		roomTypes:  roomTypes,
		services:   services,
		roomIdx:    make(map[string]int, len(roomTypes)),
		serviceIdx: make(map[string]int, len(services)),
	}

	for i, rt := range roomTypes {
		if rt.ID == "" {
			return nil, fmt.Errorf("room type %q: %w", rt.Name, ErrEmptyID)
		}
		if _, ok := c.roomIdx[rt.ID]; ok {
			return nil, fmt.Errorf("room type %q: %w", rt.ID, ErrDuplicateID)
		}
		if rt.NightlyPrice <= 0 {
			return nil, fmt.Errorf("room type %q: %w", rt.ID, ErrNonPositive)
		}
		c.roomIdx[rt.ID] = i
	}

	for i, s := range services {
		if s.ID == "" {
			return nil, fmt.Errorf("service %q: %w", s.Name, ErrEmptyID)
		}
		if _, ok := c.serviceIdx[s.ID]; ok {
			return nil, fmt.Errorf("service %q: %w", s.ID, ErrDuplicateID)
		}
		if s.FlatPrice <= 0 {
			return nil, fmt.Errorf("service %q: %w", s.ID, ErrNonPositive)
		}
		c.serviceIdx[s.ID] = i
	}

	return c, nil
}

// RoomTypes returns the room types in catalog order.
func (c *Catalog) RoomTypes() []RoomType {
	return c.roomTypes
}

// Services returns the services in catalog order.
func (c *Catalog) Services() []Service {
	return c.services
}

// RoomType looks up a room type by id.
func (c *Catalog) RoomType(id string) (RoomType, bool) {
	i, ok := c.roomIdx[id]
	if !ok {
		return RoomType{}, false
	}
	return c.roomTypes[i], true
}

// Service looks up a service by id.
func (c *Catalog) Service(id string) (Service, bool) {
	i, ok := c.serviceIdx[id]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

// DefaultCatalog returns the resort's built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		[]RoomType{
			{
				ID:           "deluxe",
				Name:         "Deluxe Ocean View",
				Description:  "Spacious room with breathtaking ocean views",
				NightlyPrice: 250,
				Capacity:     "2 adults, 1 child",
				Features:     []string{"King Bed", "Ocean View", "Free WiFi", "Breakfast Included"},
				Image:        "/images/rooms/deluxe.jpg",
			},
			{
				ID:           "garden",
				Name:         "Garden Suite",
				Description:  "Peaceful suite surrounded by lush tropical gardens",
				NightlyPrice: 320,
				Capacity:     "2 adults, 2 children",
				Features:     []string{"King Bed", "Garden View", "Private Terrace", "Free WiFi", "Breakfast Included"},
				Image:        "/images/rooms/garden.jpg",
			},
			{
				ID:           "presidential",
				Name:         "Presidential Villa",
				Description:  "Ultimate luxury with private pool and exclusive butler service",
				NightlyPrice: 550,
				Capacity:     "4 adults, 2 children",
				Features:     []string{"King Bed", "Ocean View", "Private Pool", "Butler Service", "Free WiFi", "Breakfast Included"},
				Image:        "/images/rooms/presidential.jpg",
			},
		},
		[]Service{
			{ID: "airport-transfer", Name: "Airport Transfer", Description: "Luxury vehicle to/from airport", FlatPrice: 75, Icon: "car"},
			{ID: "spa-package", Name: "Spa Package", Description: "60-minute massage and facial treatment", FlatPrice: 120, Icon: "spa"},
			{ID: "dinner-reservation", Name: "Special Dinner", Description: "Private beachfront dining experience", FlatPrice: 150, Icon: "dinner"},
			{ID: "excursion", Name: "Guided Excursion", Description: "Tour of local attractions with expert guide", FlatPrice: 90, Icon: "map"},
		},
	)
	if err != nil {
		panic(err) // built-in catalog is static
	}
	return c
}
