package appointment

import "strings"

// ===============================
// Appointment Type
// ===============================

type Type string

const (
	TypeSupport Type = "Support"
	TypeSales   Type = "Sales"
)

// ParseType accepts the enumerated types case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "support":
		return TypeSupport, nil
	case "sales":
		return TypeSales, nil
	}
	return "", Err(CodeInvalidType)
}
