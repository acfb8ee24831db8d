package domain

// Address is a value object. Fields are set once by NewAddress and compared
// by value; replace the whole Address to change it.
type Address struct {
	city    string
	street  string
	zipcode string
}

func NewAddress(city, street, zipcode string) Address {
	return Address{city: city, street: street, zipcode: zipcode}
}

func (a Address) City() string    { return a.city }
func (a Address) Street() string  { return a.street }
func (a Address) Zipcode() string { return a.zipcode }

func (a Address) IsZero() bool {
	return a == Address{}
}
