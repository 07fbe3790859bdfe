package catalog

import (
	"net/url"
)

// Query parameter keys understood by the explorer
const (
	ParamElement  = "el"
	ParamView     = "view"
	ParamQuery    = "q"
	ParamCategory = "category"
	ParamAction   = "action"
	ParamMin      = "min"
	ParamMax      = "max"
)

// BuildLink constructs a shareable deep link for a row key. The produced
// link round-trips: ResolveDeepLink(BuildLink(k)) == k.
func BuildLink(key string) string {
	return "?" + ParamElement + "=" + url.QueryEscape(key)
}

// ParseCriteria reads filter settings from request query values. Absent
// parameters mean "no constraint". Range values are clamped to the
// dataset's own bounds, a half-open range completes from the bounds, and
// an inverted range is swapped, so the result is always a valid range.
func ParseCriteria(values url.Values, ds *Dataset, rm RoleMap) (Criteria, string) {
	c := Criteria{}
	if values.Has(ParamCategory) {
		c.Categories = values[ParamCategory]
	}
	if values.Has(ParamAction) {
		c.Actions = values[ParamAction]
	}

	if min, max, ok := NumberBounds(ds, rm); ok {
		lo, loOK := parseNumber(values.Get(ParamMin))
		hi, hiOK := parseNumber(values.Get(ParamMax))
		if loOK || hiOK {
			if !loOK || lo < min {
				lo = min
			}
			if !hiOK || hi > max {
				hi = max
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			c.Range = &NumberRange{Min: lo, Max: hi}
		}
	}

	return c, values.Get(ParamQuery)
}

// ResolveDeepLink extracts the deep-link target key from a raw query
// string (with or without the leading "?"). Returns "" when the
// parameter is absent or the query string is malformed.
func ResolveDeepLink(rawQuery string) string {
	if len(rawQuery) > 0 && rawQuery[0] == '?' {
		rawQuery = rawQuery[1:]
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ""
	}
	return values.Get(ParamElement)
}
