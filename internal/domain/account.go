package domain

import "time"

// Person is an individual account. Skills is the raw free-text field as
// entered by the user; normalization happens in the matching package.
type Person struct {
	ID        string
	FullName  string
	Email     string
	Skills    string
	Location  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Business struct {
	ID        string
	Name      string
	Field     string
	About     string
	Email     string
	Location  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
