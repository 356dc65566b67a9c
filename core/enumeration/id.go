package enumeration

// ID identifies one member of an enumeration. Plain ids carry only a Code;
// multi-fuel end-use ids pair a Code with the Fuel it is recorded against.
// The zero value is not a valid id.
type ID struct {
	Code string
	Fuel string
}

// NewID creates a plain id
func NewID(code string) ID {
	return ID{Code: code}
}

// NewFuelID creates a compound (code, fuel) id
func NewFuelID(code, fuel string) ID {
	return ID{Code: code, Fuel: fuel}
}

// String returns a display form for diagnostics
func (id ID) String() string {
	if id.Fuel == "" {
		return id.Code
	}
	return id.Code + "[" + id.Fuel + "]"
}

// IsZero reports whether the id is the zero value
func (id ID) IsZero() bool {
	return id.Code == "" && id.Fuel == ""
}
