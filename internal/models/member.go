package models

import "strings"

// Member represents one person in the household.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// Name is the display name of the member.
	Name string

	// Email is the member's contact address. Optional.
	Email string

	// Color is the hex color tag used when rendering the member (e.g., "#3B82F6").
	Color string

	// Avatar holds the member's initials. Derived from Name when empty.
	Avatar string

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}

// Initials returns up to two upper-case initials of name ("Alex Chen" -> "AC").
func Initials(name string) string {
	var initials []rune
	for _, part := range strings.Fields(name) {
		initials = append(initials, []rune(part)[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}
