package entity

// Address is a street address under a City. Street, number and CEP are
// mandatory; the complement is free-form.
type Address struct {
	ID         int64
	Street     string
	Number     int
	CEP        string
	Complement string
	CityID     int64
}
