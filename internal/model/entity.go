package model

import (
	"strconv"
	"strings"
)

// Entity names double as ID prefixes: "Screening12", "Ticket3".
const (
	EntityFilm       = "Film"
	EntityTheatre    = "Theatre"
	EntityScreening  = "Screening"
	EntityBooking    = "Booking"
	EntityTicket     = "Ticket"
	EntityTicketType = "TicketType"
)

// Entities lists every entity with an id counter.
var Entities = []string{EntityFilm, EntityTheatre, EntityScreening, EntityBooking, EntityTicket, EntityTicketType}

// FormatID builds the identifier for the n-th record of an entity.
func FormatID(entity string, n int64) string {
	return entity + strconv.FormatInt(n, 10)
}

// HasIDPrefix reports whether id looks like an identifier generated for entity.
func HasIDPrefix(id, entity string) bool {
	return strings.HasPrefix(id, entity) && len(id) > len(entity)
}

// IDSuffix returns n when id has the generated form "<entity><n>".
func IDSuffix(id, entity string) (int64, bool) {
	if !HasIDPrefix(id, entity) {
		return 0, false
	}
	digits := id[len(entity):]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
