// Package sizeunit parses the size-with-unit operand grammar used by the
// "size" qualifier scope: a decimal number followed by a binary-power unit
// (k, m, g, kb, mb, gb), case-insensitive.
package sizeunit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var pattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(kb|mb|gb|k|m|g)$`)

const (
	unitKi = 1024
	unitMi = 1024 * 1024
	unitGi = 1024 * 1024 * 1024
)

var multipliers = map[string]float64{
	"k":  unitKi,
	"kb": unitKi,
	"m":  unitMi,
	"mb": unitMi,
	"g":  unitGi,
	"gb": unitGi,
}

// Valid reports whether operand matches the size grammar. It is the
// validator referenced by the "size" qualifier.
func Valid(operand string) bool {
	return pattern.MatchString(strings.TrimSpace(operand))
}

// Parse converts operand into a byte count. It is shared by the size
// qualifier's cast (applied to the query operand) and its validator, which
// reports Parse's literal "In SIZE: ..." error message on failure.
func Parse(operand string) (int64, error) {
	trimmed := strings.TrimSpace(operand)
	m := pattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, fmt.Errorf(
			"In SIZE: Operand must be a number followed by a unit: mb|gb|kb|k|m|g",
		)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf(
			"In SIZE: Operand must be a number followed by a unit: mb|gb|kb|k|m|g",
		)
	}

	unit := strings.ToLower(m[2])
	bytesF := value * multipliers[unit]
	return int64(bytesF), nil
}
