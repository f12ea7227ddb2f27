package entity

import "strings"

// Crew miembro del personal que atiende órdenes.
type Crew struct {
	CrewID    string
	FirstName string
	LastName  string
}

// FullName "<first> <last>".
func (c Crew) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
