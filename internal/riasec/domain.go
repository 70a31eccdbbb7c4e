// Package riasec defines the six fixed interest domains used throughout
// the assessment engine and their canonical ordering.
package riasec

import "fmt"

// Domain is one of the six RIASEC interest domains.
type Domain string

const (
	Realistic     Domain = "R"
	Investigative Domain = "I"
	Artistic      Domain = "A"
	Social        Domain = "S"
	Enterprising  Domain = "E"
	Conventional  Domain = "C"
)

// Alphabet is the fixed canonical domain order. All deterministic
// tie-breaking in scoring and selection uses this order.
var Alphabet = []Domain{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

// domainNames maps each domain to its display name.
var domainNames = map[Domain]string{
	Realistic:     "Realistic",
	Investigative: "Investigative",
	Artistic:      "Artistic",
	Social:        "Social",
	Enterprising:  "Enterprising",
	Conventional:  "Conventional",
}

// domainRank maps each domain to its position in Alphabet.
var domainRank = map[Domain]int{}

func init() {
	for i, d := range Alphabet {
		domainRank[d] = i
	}
}

// Name returns the display name of the domain, or the raw tag if unknown.
func (d Domain) Name() string {
	if n, ok := domainNames[d]; ok {
		return n
	}
	return string(d)
}

// Valid reports whether d is one of the six known domains.
func (d Domain) Valid() bool {
	_, ok := domainRank[d]
	return ok
}

// Rank returns the domain's position in the canonical order.
// Unknown domains sort after all known ones.
func (d Domain) Rank() int {
	if r, ok := domainRank[d]; ok {
		return r
	}
	return len(Alphabet)
}

// Parse converts a single-letter tag to a Domain.
func Parse(tag string) (Domain, error) {
	d := Domain(tag)
	if !d.Valid() {
		return "", fmt.Errorf("unknown domain tag %q", tag)
	}
	return d, nil
}

// ParseAll converts a list of tags, rejecting the first unknown one.
func ParseAll(tags []string) ([]Domain, error) {
	out := make([]Domain, 0, len(tags))
	for _, t := range tags {
		d, err := Parse(t)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Strings converts domains back to their string tags.
func Strings(domains []Domain) []string {
	out := make([]string, len(domains))
	for i, d := range domains {
		out[i] = string(d)
	}
	return out
}
