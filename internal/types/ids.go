package types

import "strconv"

// ID type aliases provide semantic meaning and reduce repetitive int conversions.

// NoteID identifies a unique note in the system
type NoteID int

// ToInt converts type alias back to int for database parameters
func (id NoteID) ToInt() int {
	return int(id)
}

func (id NoteID) String() string {
	return strconv.Itoa(int(id))
}

// NoteIDFromInt creates a NoteID from an int value
func NoteIDFromInt(i int) NoteID {
	return NoteID(i)
}
