package catalog

// Role is a semantic meaning carried by a dataset column, independent of
// the literal column name.
type Role string

const (
	RoleNumber              Role = "number"
	RoleName                Role = "name"
	RoleSymbol              Role = "symbol"
	RoleCategory            Role = "category"
	RoleAction              Role = "action"
	RoleDefinition          Role = "definition"
	RoleDetailedExplanation Role = "detailed_explanation"
	RoleReference           Role = "reference"
)

// roleColumns maps each role to the column name the source sheet uses
var roleColumns = map[Role]string{
	RoleNumber:              "Element No",
	RoleName:                "Element Name",
	RoleSymbol:              "Symbol",
	RoleCategory:            "Category",
	RoleAction:              "Action",
	RoleDefinition:          "Definition",
	RoleDetailedExplanation: "Detailed Explanation",
	RoleReference:           "AMJ Article Reference",
}

// BindingKind classifies how a role is bound to the dataset. The numeric
// vs text decision is made once at resolution time, never per row.
type BindingKind int

const (
	BindingAbsent BindingKind = iota
	BindingText
	BindingNumeric
)

// RoleBinding records which column (if any) carries a role and whether
// that column is numeric
type RoleBinding struct {
	Column string
	Kind   BindingKind
}

// RoleMap holds the resolved binding for every role
type RoleMap map[Role]RoleBinding

// ResolveRoles maps the fixed roles onto the dataset's actual columns.
// Absent columns degrade to BindingAbsent, except Name, which falls back
// to the first column so every row keeps a displayable label. Pure;
// callers compute it once per dataset and reuse it.
func ResolveRoles(ds *Dataset) RoleMap {
	rm := make(RoleMap, len(roleColumns))

	for role, column := range roleColumns {
		if !ds.HasColumn(column) {
			rm[role] = RoleBinding{Kind: BindingAbsent}
			continue
		}
		kind := BindingText
		if columnIsNumeric(ds, column) {
			kind = BindingNumeric
		}
		rm[role] = RoleBinding{Column: column, Kind: kind}
	}

	if rm[RoleName].Kind == BindingAbsent && len(ds.Columns()) > 0 {
		rm[RoleName] = RoleBinding{Column: ds.Columns()[0], Kind: BindingText}
	}

	return rm
}

// columnIsNumeric reports whether every non-empty value in a column
// parses as a number. Columns with no non-empty values are not numeric.
func columnIsNumeric(ds *Dataset, column string) bool {
	nonEmpty := 0
	for _, row := range ds.Rows() {
		v := row.Get(column)
		if v == "" {
			continue
		}
		nonEmpty++
		if _, ok := parseNumber(v); !ok {
			return false
		}
	}
	return nonEmpty > 0
}

// Has reports whether the role is bound to a column
func (m RoleMap) Has(role Role) bool {
	return m[role].Kind != BindingAbsent
}

// Numeric reports whether the role is bound to a numeric column
func (m RoleMap) Numeric(role Role) bool {
	return m[role].Kind == BindingNumeric
}

// Column returns the column name carrying the role, or "" when absent
func (m RoleMap) Column(role Role) string {
	return m[role].Column
}

// Value returns the row's stringified value for the role
func (m RoleMap) Value(row Row, role Role) string {
	if !m.Has(role) {
		return ""
	}
	return row.Get(m.Column(role))
}

// NumberOf parses the row's Number role value. Only meaningful when the
// Number role is bound numeric.
func (m RoleMap) NumberOf(row Row) (float64, bool) {
	if !m.Numeric(RoleNumber) {
		return 0, false
	}
	return parseNumber(m.Value(row, RoleNumber))
}

// RowKey returns the row's stable external identifier: the stringified
// Number when the Number role is numeric, otherwise the Name value.
// Uniqueness across rows is the dataset's responsibility.
func (m RoleMap) RowKey(row Row) string {
	if n, ok := m.NumberOf(row); ok {
		return formatNumber(n)
	}
	return m.Value(row, RoleName)
}
