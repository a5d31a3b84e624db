package bank

// Domain is one of the four latent trait categories every score is
// expressed against.
type Domain string

const (
	DomainAnalytical Domain = "A"
	DomainCreative   Domain = "C"
	DomainSocial     Domain = "S"
	DomainPhysical   Domain = "P"
)

// AllDomains returns the four domains in canonical enumeration order.
// Ranking ties and burnout emission both follow this order, so it must
// never be reordered.
func AllDomains() []Domain {
	return []Domain{
		DomainAnalytical,
		DomainCreative,
		DomainSocial,
		DomainPhysical,
	}
}

// DisplayName returns a human-readable name for a domain.
func DisplayName(d Domain) string {
	switch d {
	case DomainAnalytical:
		return "Analytical"
	case DomainCreative:
		return "Creative"
	case DomainSocial:
		return "Social & Empathic"
	case DomainPhysical:
		return "Physical & Action"
	default:
		return string(d)
	}
}
