package parser

import (
	"regexp"
	"strings"
)

// Noise patterns removed from descriptions, applied in order. Later
// patterns assume the noise matched by earlier ones is already gone.
var (
	// IBANs like NL12ABCD1234567890
	ibanPattern = regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z0-9]{4}\d{10,30}\b`)
	// BICs like AABBCCDD or INGBNL2AXXX
	bicPattern = regexp.MustCompile(`\b[A-Z]{6}[A-Z0-9]{2,5}\b`)
	// Card references like PAS112 NR:123456
	pasRefPattern = regexp.MustCompile(`(?i)PAS\d+\s*NR:\S+`)
	// SEPA field tags like /TRTP/, /CSID/, /MARF/, /REMI/, /EREF/, /NAME/
	fieldTagPattern = regexp.MustCompile(`/[A-Z]{3,6}/`)
	// Long digit runs (reference numbers)
	refDigitsPattern = regexp.MustCompile(`\b\d{6,}\b`)
	// Payment method prefixes, tolerant of spacing and case
	applePayPattern   = regexp.MustCompile(`(?i)\bBEA,?\s*Apple Pay\b[ ,:]*`)
	idealSplitPattern = regexp.MustCompile(`(?i)\biDEAL/\s*BI\s*C/?\b[ ,:]*`)
	idealPattern      = regexp.MustCompile(`(?i)\biDEAL/\s*BIC/?\b[ ,:]*`)
	// Timestamps like 21.05.25/13:11
	stampPattern = regexp.MustCompile(`\d{2}\.\d{2}\.\d{2}/\d{2}:\d{2}`)
	// Terminal stamps like a404-- -05-2025 22:17
	terminalPattern = regexp.MustCompile(`(?i)a\d{3,4}-*\s*-*\d{2}-\d{2}-\d{4}\s*\d{2}:\d{2}`)

	multiSpacePattern  = regexp.MustCompile(`\s+`)
	doubleCommaPattern = regexp.MustCompile(`,,`)
)

// NormalizeAmount rewrites a raw amount string as a plain decimal
// string with "." as the decimal separator. When both "." and ","
// occur the string is assumed to be in European format ("2.000,00");
// a lone "," is treated as the decimal separator ("1234,56"). No
// currency symbols are stripped and nothing is validated: the result
// is best-effort for any input.
func NormalizeAmount(raw string) string {
	s := strings.ReplaceAll(raw, " ", "")
	s = strings.ReplaceAll(s, "\u00A0", "") // non-breaking space
	switch {
	case strings.Contains(s, ".") && strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", ".")
	}
	return s
}

// NormalizeDescription strips bank noise (IBANs, BICs, card and SEPA
// references, payment-method prefixes, embedded timestamps) from a
// transaction description, then collapses repeated whitespace and
// commas and trims the edges. Lossy by design; always returns a
// string, possibly empty.
func NormalizeDescription(raw string) string {
	s := ibanPattern.ReplaceAllString(raw, "")
	s = bicPattern.ReplaceAllString(s, "")
	s = pasRefPattern.ReplaceAllString(s, "")
	s = fieldTagPattern.ReplaceAllString(s, "")
	s = refDigitsPattern.ReplaceAllString(s, "")
	s = applePayPattern.ReplaceAllString(s, "")
	s = idealSplitPattern.ReplaceAllString(s, "")
	s = idealPattern.ReplaceAllString(s, "")
	s = stampPattern.ReplaceAllString(s, "")
	s = terminalPattern.ReplaceAllString(s, "")
	s = multiSpacePattern.ReplaceAllString(s, " ")
	s = doubleCommaPattern.ReplaceAllString(s, ",")
	return strings.Trim(s, " ,")
}
