// internal/engine/filter.go
package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern wraps regular-expression compile failures.
var ErrInvalidPattern = errors.New("invalid search pattern")

// FilterKind describes which predicate an Engine applies.
type FilterKind string

const (
	FilterNone  FilterKind = "none"
	FilterPlain FilterKind = "plain text"
	FilterRegex FilterKind = "regex"
)

// Filter decides whether decoded content becomes a Match.
type Filter interface {
	Match(content string) bool
	Kind() FilterKind
}

// NewFilter builds the predicate for a search pattern. An empty pattern
// accepts everything; regex compile errors wrap ErrInvalidPattern.
func NewFilter(pattern string, isRegex bool) (Filter, error) {
	if pattern == "" {
		return passAll{}, nil
	}
	if !isRegex {
		return substring(pattern), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return regexFilter{re: re}, nil
}

type passAll struct{}

func (passAll) Match(string) bool { return true }
func (passAll) Kind() FilterKind  { return FilterNone }

type substring string

func (s substring) Match(content string) bool { return strings.Contains(content, string(s)) }
func (substring) Kind() FilterKind              { return FilterPlain }

type regexFilter struct{ re *regexp.Regexp }

func (f regexFilter) Match(content string) bool { return f.re.MatchString(content) }
func (regexFilter) Kind() FilterKind              { return FilterRegex }

// captureContext copies up to n bytes on each side of data[start:end].
func captureContext(data []byte, start, end, n int) (before, after []byte) {
	if n <= 0 {
		return nil, nil
	}
	if start > 0 {
		lo := start - n
		if lo < 0 {
			lo = 0
		}
		before = append([]byte(nil), data[lo:start]...)
	}
	if end < len(data) {
		hi := end + n
		if hi > len(data) {
			hi = len(data)
		}
		after = append([]byte(nil), data[end:hi]...)
	}
	return before, after
}
