package auth

import (
	"regexp"
	"strings"
)

// provinces is the set of Canadian province and territory codes.
var provinces = map[string]struct{}{
	"AB": {}, "BC": {}, "MB": {}, "NB": {}, "NL": {}, "NS": {},
	"NT": {}, "NU": {}, "ON": {}, "PE": {}, "QC": {}, "SK": {}, "YT": {},
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Canadian postal code, e.g. "N9B 3P4". Separator optional.
	postalPattern = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z][ -]?\d[A-Za-z]\d$`)
)

// ValidProvince reports whether code is a Canadian province or territory code.
func ValidProvince(code string) bool {
	_, ok := provinces[strings.ToUpper(code)]
	return ok
}

// ValidPostalCode reports whether s looks like a Canadian postal code.
func ValidPostalCode(s string) bool {
	return postalPattern.MatchString(s)
}

// ValidEmail is a light shape check; deliverability is the mail server's problem.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
