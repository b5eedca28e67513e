package substat

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser converts OCR text blocks into substats. The zero value is not usable;
// use NewParser or DefaultParser.
type Parser struct {
	locale     Locale
	normalizer *Normalizer
}

// NewParser creates a Parser for the given locale and correction table.
func NewParser(locale Locale, corrections Corrections) *Parser {
	return &Parser{
		locale:     locale,
		normalizer: NewNormalizer(corrections),
	}
}

// DefaultParser reads Japanese screens with DefaultCorrections.
var DefaultParser = NewParser(Japanese, DefaultCorrections)

// Parse parses block with DefaultParser.
func Parse(block string) ([]Substat, []*MalformedLineError) {
	return DefaultParser.Parse(block)
}

// Parse returns one Substat per non-blank line in reading order, plus one error
// per line that could not be parsed. A bad line never stops the rest of the block.
func (p *Parser) Parse(block string) ([]Substat, []*MalformedLineError) {
	var subs []Substat
	var errs []*MalformedLineError

	lines := strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
	for i, raw := range lines {
		line := p.normalizer.Normalize(raw)
		if line == "" {
			continue
		}

		s, err := p.parseLine(line)
		if err != nil {
			errs = append(errs, &MalformedLineError{Line: i + 1, Text: line, Err: err})
			continue
		}
		subs = append(subs, s)
	}

	return subs, errs
}

// ParseLine parses a single already-normalized line.
func (p *Parser) ParseLine(line string) (Substat, error) {
	s, err := p.parseLine(line)
	if err != nil {
		return Substat{}, &MalformedLineError{Line: 1, Text: line, Err: err}
	}
	return s, nil
}

func (p *Parser) parseLine(line string) (Substat, error) {
	name, param, ok := strings.Cut(line, "+")
	if !ok {
		return Substat{}, ErrMissingSeparator
	}

	isPercent := strings.Contains(param, "%")
	label := strings.ReplaceAll(param, "%", "")
	if !isPlainNumber(label) {
		return Substat{}, fmt.Errorf("%w: %q", ErrInvalidNumber, label)
	}
	value, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return Substat{}, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}

	kind := KindActual
	if isPercent {
		kind = KindPercent
	}

	return New(name, p.locale.Classify(name, isPercent), Param{
		Label: param,
		Kind:  kind,
		Value: value,
	}), nil
}

// isPlainNumber reports whether s is decimal digits with at most one '.'.
// Signs, exponents, hex and NaN/Inf spellings are OCR noise, not values.
func isPlainNumber(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
