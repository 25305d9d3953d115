package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog returns a small fixed catalog used across the package tests.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := NewCatalog(
		[]RoomType{
			{ID: "deluxe", Name: "Deluxe Ocean View", NightlyPrice: 150},
			{ID: "garden", Name: "Garden Suite", NightlyPrice: 320},
		},
		[]Service{
			{ID: "S1", Name: "Airport Transfer", FlatPrice: 10},
			{ID: "S2", Name: "Spa Package", FlatPrice: 25},
		},
	)
	require.NoError(t, err)

	return c
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name      string
		roomTypes []RoomType
		services  []Service
		wantErr   error
	}{
		{
			name:      "valid catalog",
			roomTypes: []RoomType{{ID: "deluxe", NightlyPrice: 250}},
			services:  []Service{{ID: "spa", FlatPrice: 120}},
		},
		{
			name:      "empty room type id",
			roomTypes: []RoomType{{ID: "", NightlyPrice: 250}},
			wantErr:   ErrEmptyID,
		},
		{
			name:      "duplicate room type id",
			roomTypes: []RoomType{{ID: "deluxe", NightlyPrice: 250}, {ID: "deluxe", NightlyPrice: 300}},
			wantErr:   ErrDuplicateID,
		},
		{
			name:      "zero nightly price",
			roomTypes: []RoomType{{ID: "deluxe", NightlyPrice: 0}},
			wantErr:   ErrNonPositive,
		},
		{
			name:     "negative service price",
			services: []Service{{ID: "spa", FlatPrice: -1}},
			wantErr:  ErrNonPositive,
		},
		{
			name:     "duplicate service id",
			services: []Service{{ID: "spa", FlatPrice: 120}, {ID: "spa", FlatPrice: 90}},
			wantErr:  ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.roomTypes, tt.services)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := testCatalog(t)

	room, ok := c.RoomType("deluxe")
	require.True(t, ok)
	assert.Equal(t, 150.0, room.NightlyPrice)

	_, ok = c.RoomType("penthouse")
	assert.False(t, ok)

	svc, ok := c.Service("S2")
	require.True(t, ok)
	assert.Equal(t, "Spa Package", svc.Name)

	_, ok = c.Service("S9")
	assert.False(t, ok)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Len(t, c.RoomTypes(), 3)
	assert.Len(t, c.Services(), 4)

	room, ok := c.RoomType("deluxe")
	require.True(t, ok)
	assert.Equal(t, 250.0, room.NightlyPrice)

	svc, ok := c.Service("spa-package")
	require.True(t, ok)
	assert.Equal(t, 120.0, svc.FlatPrice)
}
