package validation

import "regexp"

// A Rule pairs an error predicate with the message shown when it fires.
// Predicates return true to indicate an error state.
type Rule struct {
	Field   string
	Invalid func(value string) bool
	Message string
}

// Check evaluates the rule and records the message on error.
func (r Rule) Check(value string, v Violations) {
	if r.Invalid(value) {
		v[r.Field] = r.Message
	}
}

var (
	alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
	basicEmail   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// UsernameInvalid reports a username containing anything beyond letters
// and digits.
func UsernameInvalid(value string) bool {
	return !alphanumeric.MatchString(value)
}

// PasswordInvalid reports a password shorter than six characters.
func PasswordInvalid(value string) bool {
	return len(value) < 6
}

// EmailInvalid reports a value not matching a basic local@domain.tld shape.
func EmailInvalid(value string) bool {
	return !basicEmail.MatchString(value)
}

func minLenInvalid(n int) func(string) bool {
	return func(value string) bool { return len(value) < n }
}

func emptyInvalid(value string) bool { return len(value) == 0 }

// Profile field rules, one per onboarding field. Messages mirror the
// helper texts of the original forms.
var (
	CompanyNameRule = Rule{
		Field:   "company_name",
		Invalid: UsernameInvalid,
		Message: "Company name only contain letters and numbers!",
	}
	FiscalCodeRule = Rule{
		Field:   "fisical_code",
		Invalid: minLenInvalid(6),
		Message: "Fiscal code must be at least 6 characters long!",
	}
	AddressRule = Rule{
		Field:   "address",
		Invalid: minLenInvalid(6),
		Message: "Address must be at least 6 characters long!",
	}
	ZipCodeRule = Rule{
		Field:   "zip_code",
		Invalid: minLenInvalid(4),
		Message: "Zip code must be at least 4 characters long!",
	}
	CountryRule = Rule{
		Field:   "country",
		Invalid: emptyInvalid,
		Message: "Country is required!",
	}
	PhoneRule = Rule{
		Field:   "phone",
		Invalid: minLenInvalid(8),
		Message: "Phone number must be at least 8 characters long!",
	}
	EmailRule = Rule{
		Field:   "email",
		Invalid: EmailInvalid,
		Message: "Invalid email address!",
	}
	LocalCurrencyRule = Rule{
		Field:   "local_currency",
		Invalid: emptyInvalid,
		Message: "Currency is required!",
	}
	LocalTaxRule = Rule{
		Field:   "local_tax_percentage",
		Invalid: minLenInvalid(2),
		Message: "Tax rate must be at least 2 characters long!",
	}
)
