package domain

import "fmt"

type Customer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"` // Pointer agar bisa kosong
}

// Summary is the one-line form shown by the menu.
func (c Customer) Summary() string {
	phone := "-"
	if c.Phone != nil {
		phone = *c.Phone
	}
	return fmt.Sprintf("%s | Phone: %s | Customer ID: %d", c.Name, phone, c.ID)
}
