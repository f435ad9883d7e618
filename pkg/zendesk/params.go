package zendesk

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Params holds query or body parameters for an operation. Values may be
// scalars or slices of scalars; slices are serialized as comma-joined
// strings, matching the API's list conventions (e.g., ids=1,2,3).
type Params map[string]interface{}

// NewParams creates an empty parameter set.
func NewParams() Params {
	return Params{}
}

// With sets a parameter and returns the set for chaining.
func (p Params) With(key string, value interface{}) Params {
	p[key] = value

	return p
}

// Merge copies all entries from other into p, other winning on key collision,
// and returns p. A nil receiver yields a fresh set so callers can merge into
// absent parameters.
func (p Params) Merge(other Params) Params {
	if p == nil {
		p = NewParams()
	}

	for key, value := range other {
		p[key] = value
	}

	return p
}

// Clone returns a shallow copy of the parameter set.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for key, value := range p {
		out[key] = value
	}

	return out
}

// Values converts the parameter set to url.Values. Encoding is deterministic:
// url.Values.Encode sorts by key, so the same mapping always produces the
// same query string.
func (p Params) Values() url.Values {
	values := url.Values{}
	for key, value := range p {
		values.Set(key, FormatValue(value))
	}

	return values
}

// Encode returns the URL-encoded query string for the parameter set.
func (p Params) Encode() string {
	return p.Values().Encode()
}

// ParseParams converts an already-encoded query string into a parameter
// mapping. Parsing then re-encoding is idempotent: a mapping obtained here
// encodes back to an equivalent query string.
func ParseParams(raw string) (Params, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing query string: %w", err)
	}

	params := make(Params, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}

	return params, nil
}

// FormatValue serializes a single parameter value. Slices become comma-joined
// strings; scalars are rendered without quoting.
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		return strings.Join(v, ",")
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}

		return strings.Join(parts, ",")
	case []int64:
		return JoinIDs(v)
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = FormatValue(item)
		}

		return strings.Join(parts, ",")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// JoinIDs serializes an identifier list as a comma-joined string.
func JoinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, ",")
}
