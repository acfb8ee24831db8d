package domain_test

import (
	"testing"

	"shopservice/internal/domain"
)

func TestAddressComparedByValue(t *testing.T) {
	a := domain.NewAddress("Seoul", "Gangnam-daero 1", "06000")
	b := domain.NewAddress("Seoul", "Gangnam-daero 1", "06000")
	c := domain.NewAddress("Busan", "Gangnam-daero 1", "06000")

	if a != b {
		t.Fatalf("equal addresses compared unequal: %+v %+v", a, b)
	}
	if a == c {
		t.Fatalf("different addresses compared equal")
	}
	if a.IsZero() || !(domain.Address{}).IsZero() {
		t.Fatalf("IsZero mismatch")
	}
	if a.City() != "Seoul" || a.Street() != "Gangnam-daero 1" || a.Zipcode() != "06000" {
		t.Fatalf("unexpected accessors: %q %q %q", a.City(), a.Street(), a.Zipcode())
	}
}
