package affiliate

// TermsKind discriminates the commission policy resolved for one
// affiliate/product pair.
type TermsKind string

const (
	// TermsNone means the affiliate earns nothing on the product.
	TermsNone TermsKind = "none"
	// TermsPercentage means Value percent (0-100) of the line value.
	TermsPercentage TermsKind = "percentage"
	// TermsFixed means Value currency units per purchased unit.
	TermsFixed TermsKind = "fixed"
)

// CommissionTerms is the resolved commission policy for one line item.
// The calculator never sees nullable override fields, only this variant.
type CommissionTerms struct {
	Kind  TermsKind
	Value float64
}

// NoCommission returns terms under which a line earns nothing.
func NoCommission() CommissionTerms {
	return CommissionTerms{Kind: TermsNone}
}

// Percentage returns percentage terms with a 0-100 value.
func Percentage(value float64) CommissionTerms {
	return CommissionTerms{Kind: TermsPercentage, Value: value}
}

// FixedPerUnit returns fixed terms paying value per purchased unit.
func FixedPerUnit(value float64) CommissionTerms {
	return CommissionTerms{Kind: TermsFixed, Value: value}
}

// Eligible reports whether the terms can produce a nonzero commission.
func (t CommissionTerms) Eligible() bool {
	return t.Kind != TermsNone && t.Value > 0
}
