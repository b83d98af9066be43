package models

// Client is one customer record as served by the API.
// ID is server-assigned and absent until creation succeeds.
// The wire name "fisical_code" is the API's historical spelling.
type Client struct {
	ID          string `json:"id,omitempty"`
	CompanyName string `json:"company_name"`
	FiscalCode  string `json:"fisical_code,omitempty"`
	Address     string `json:"address"`
	ZipCode     string `json:"zip_code"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`

	// Expanded is per-screen accordion state, never persisted.
	Expanded bool `json:"-"`
}

// Label returns the text shown for this client in pickers and lists.
func (c *Client) Label() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return c.ID
}

// Countries is the fixed list offered by the country picker.
var Countries = []string{
	"Tunisia",
	"France",
	"Germany",
	"United States",
	"United Kingdom",
	"Canada",
	"Italy",
	"Spain",
	"Japan",
	"China",
	"India",
	"Brazil",
	"Australia",
	"South Korea",
	"Russia",
	"Mexico",
	"South Africa",
	"Egypt",
	"Turkey",
	"Saudi Arabia",
}

// ValidCountry reports whether name is one of the supported countries.
func ValidCountry(name string) bool {
	for _, c := range Countries {
		if c == name {
			return true
		}
	}
	return false
}
