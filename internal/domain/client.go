package domain

import "time"

// Client is the stored document: one row per client with the whole
// package/booking/request tree embedded.
type Client struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	TelegramChatID *int64    `json:"telegramChatId,omitempty"`
	Packages       []Package `json:"packages"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateClientInput struct {
	Name           string
	Email          string
	TelegramChatID *int64
}

type UpdateClientInput struct {
	Name           string
	Email          string
	TelegramChatID *int64
}

func (c *Client) PackageIndex(id string) int {
	for i := range c.Packages {
		if c.Packages[i].ID == id {
			return i
		}
	}
	return -1
}

// WithPackage returns a copy of the client's package list with pkg
// replacing the package of the same id.
func (c *Client) WithPackage(pkg Package) []Package {
	out := make([]Package, len(c.Packages))
	copy(out, c.Packages)
	for i := range out {
		if out[i].ID == pkg.ID {
			out[i] = pkg
		}
	}
	return out
}
