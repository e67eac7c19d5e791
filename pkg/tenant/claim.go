package tenant

import (
	"encoding/json"
	"strconv"
)

// Resolution is the tagged result of parsing a tenant claim: either a
// clinic id was found or the claim is treated as absent. Parsing never
// fails: a claim that cannot be read as an integer resolves as absent.
type Resolution struct {
	ID    int64
	Found bool
}

// Found returns a resolution carrying the given clinic id.
func Found(id int64) Resolution { return Resolution{ID: id, Found: true} }

// Absent returns the empty resolution.
func Absent() Resolution { return Resolution{} }

// ParseClaim reads a tenant identifier claim in any of the shapes tokens
// encode it: a JSON number, a string-encoded integer, or a native Go
// integer. Absent values, non-integer strings, and any other shapes
// resolve as absent. The claim is a routing hint, not a security
// decision, so leniency here is deliberate; enforcement happens at the
// persistence layer.
func ParseClaim(v any) Resolution {
	switch c := v.(type) {
	case nil:
		return Absent()
	case int64:
		return Found(c)
	case int:
		return Found(int64(c))
	case int32:
		return Found(int64(c))
	case float64:
		// JSON numbers decode as float64; accept only whole values.
		if c == float64(int64(c)) {
			return Found(int64(c))
		}
		return Absent()
	case json.Number:
		if id, err := c.Int64(); err == nil {
			return Found(id)
		}
		return Absent()
	case string:
		if id, err := strconv.ParseInt(c, 10, 64); err == nil {
			return Found(id)
		}
		return Absent()
	default:
		return Absent()
	}
}
