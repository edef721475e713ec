// Package stay models the guest stay vouchers are tied to. Stays are owned
// by the hotel's PMS; this service only reads them.
package stay

import (
	"time"

	"github.com/google/uuid"
)

type Stay struct {
	id        uuid.UUID
	guestName string
	checkIn   time.Time
	checkOut  time.Time
}

func ReconstructStay(id uuid.UUID, guestName string, checkIn, checkOut time.Time) *Stay {
	return &Stay{
		id:        id,
		guestName: guestName,
		checkIn:   checkIn,
		checkOut:  checkOut,
	}
}

func (s *Stay) ID() uuid.UUID       { return s.id }
func (s *Stay) GuestName() string   { return s.guestName }
func (s *Stay) CheckIn() time.Time  { return s.checkIn }
func (s *Stay) CheckOut() time.Time { return s.checkOut }
