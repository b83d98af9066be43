package validation

// Step is one ordered group of fields in the onboarding wizard.
type Step struct {
	Label string
	Rules []Rule
}

// Wizard walks the profile-creation steps over a collected field map.
// Navigation is advisory: Next always advances and invalid fields only
// surface messages; the terminal Review step lists everything collected.
type Wizard struct {
	steps   []Step
	current int
	values  map[string]string
}

// NewProfileWizard builds the four-step onboarding wizard:
// Company Details, Contact Details, Financial Details, Review.
func NewProfileWizard() *Wizard {
	return &Wizard{
		steps: []Step{
			{
				Label: "Company Details",
				Rules: []Rule{CompanyNameRule, FiscalCodeRule, AddressRule, ZipCodeRule, CountryRule},
			},
			{
				Label: "Contact Details",
				Rules: []Rule{PhoneRule, EmailRule},
			},
			{
				Label: "Financial Details",
				Rules: []Rule{LocalCurrencyRule, LocalTaxRule},
			},
			{
				Label: "Review",
			},
		},
		values: make(map[string]string),
	}
}

// Set records a field value. Unknown fields are kept too; the server is the
// final authority on what it accepts.
func (w *Wizard) Set(field, value string) {
	w.values[field] = value
}

// Value returns the collected value for a field.
func (w *Wizard) Value(field string) string {
	return w.values[field]
}

// Current returns the active step.
func (w *Wizard) Current() Step {
	return w.steps[w.current]
}

// StepIndex returns the zero-based index of the active step.
func (w *Wizard) StepIndex() int { return w.current }

// Next advances to the following step. It never blocks on validation.
func (w *Wizard) Next() {
	if w.current < len(w.steps)-1 {
		w.current++
	}
}

// Previous steps back.
func (w *Wizard) Previous() {
	if w.current > 0 {
		w.current--
	}
}

// AtReview reports whether the terminal step is active.
func (w *Wizard) AtReview() bool {
	return w.current == len(w.steps)-1
}

// StepViolations evaluates the active step's rules against the collected
// values. Empty result means the step is complete.
func (w *Wizard) StepViolations() Violations {
	return w.violations(w.steps[w.current].Rules)
}

// AllViolations evaluates every step, for the final gate before submit.
func (w *Wizard) AllViolations() Violations {
	v := Violations{}
	for _, s := range w.steps {
		for _, r := range s.Rules {
			r.Check(w.values[r.Field], v)
		}
	}
	return v
}

// Review returns field/value pairs in step order for the terminal listing.
func (w *Wizard) Review() [][2]string {
	var out [][2]string
	for _, s := range w.steps {
		for _, r := range s.Rules {
			out = append(out, [2]string{r.Field, w.values[r.Field]})
		}
	}
	return out
}

// Values returns a copy of everything collected, ready for submission.
func (w *Wizard) Values() map[string]string {
	out := make(map[string]string, len(w.values))
	for k, v := range w.values {
		out[k] = v
	}
	return out
}

func (w *Wizard) violations(rules []Rule) Violations {
	v := Violations{}
	for _, r := range rules {
		r.Check(w.values[r.Field], v)
	}
	return v
}
