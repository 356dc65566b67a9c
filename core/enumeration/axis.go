// Package enumeration - Axis-tagged enumerations
// An enumeration is a named, ordered, immutable set of ids describing all
// valid values along one axis of a dataset. The axis tag is a closed enum;
// dispatch on it replaces runtime type inspection.
package enumeration

// Axis identifies the dataset dimension an enumeration describes
type Axis int

const (
	// Geography - spatial dimension (counties, states, regions)
	Geography Axis = iota
	// Sector - economic sector dimension
	Sector
	// EndUse - end-use dimension; carries fuel/unit metadata
	EndUse
	// Time - temporal dimension (hours, days, seasons)
	Time
	// Fuel - sub-axis used by fuel enumerations attached to end-uses
	Fuel
)

// String returns string representation
func (a Axis) String() string {
	switch a {
	case Geography:
		return "geography"
	case Sector:
		return "sector"
	case EndUse:
		return "enduse"
	case Time:
		return "time"
	case Fuel:
		return "fuel"
	default:
		return "unknown"
	}
}

// ParseAxis converts a string to an Axis
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "geography":
		return Geography, true
	case "sector":
		return Sector, true
	case "enduse":
		return EndUse, true
	case "time":
		return Time, true
	case "fuel":
		return Fuel, true
	default:
		return Axis(-1), false
	}
}
