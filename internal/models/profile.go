package models

// CompanyProfile is the single business-identity record of the account:
// name, fiscal code, address, local currency, tax rate and optional logo.
// The wire name "fisical_code" is the API's historical spelling.
type CompanyProfile struct {
	CompanyName        string `json:"company_name"`
	FiscalCode         string `json:"fisical_code"`
	Address            string `json:"address"`
	ZipCode            string `json:"zip_code"`
	Country            string `json:"country"`
	Phone              string `json:"phone"`
	Email              string `json:"email,omitempty"`
	LocalCurrency      string `json:"local_currency"`
	LocalTaxPercentage string `json:"local_tax_percentage"`

	// Picture is the company logo, base64-encoded in transit. It has its own
	// set/replace/delete lifecycle via the picture endpoints.
	Picture string `json:"picture,omitempty"`
}

// HasPicture reports whether a logo is set.
func (p *CompanyProfile) HasPicture() bool {
	return p.Picture != ""
}

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched by the server.
type ProfilePatch struct {
	CompanyName        *string `json:"company_name,omitempty"`
	FiscalCode         *string `json:"fisical_code,omitempty"`
	Address            *string `json:"address,omitempty"`
	ZipCode            *string `json:"zip_code,omitempty"`
	Country            *string `json:"country,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Email              *string `json:"email,omitempty"`
	LocalCurrency      *string `json:"local_currency,omitempty"`
	LocalTaxPercentage *string `json:"local_tax_percentage,omitempty"`
}
