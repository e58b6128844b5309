// Package rule compiles life-like rule strings such as "B3/S23".
//
// A compiled Rule holds one canonical value per half, a CountSet of accepted
// Moore-neighbor counts. Evaluators either query the set directly (Contains,
// Next, Table) or embed its source-text rendering (Expr) in generated programs;
// both views read the same bits.
package rule

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxCount is the largest neighbor count in a Moore neighborhood.
const MaxCount = 8

var (
	// ErrInvalidRuleFormat reports a rule without the B or /S markers.
	ErrInvalidRuleFormat = errors.New("invalid rule format")
	// ErrInvalidRuleDigit reports a count outside 0..8.
	ErrInvalidRuleDigit = errors.New("invalid rule digit")
)

// CountSet is a bitmask of neighbor counts; bit n set means count n is accepted.
type CountSet uint16

// Contains reports whether n is in the set.
func (s CountSet) Contains(n int) bool {
	if n < 0 || n > MaxCount {
		return false
	}
	return s&(1<<n) != 0
}

// Counts lists the members in ascending order.
func (s CountSet) Counts() []int {
	var out []int
	for n := 0; n <= MaxCount; n++ {
		if s.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Empty reports whether no count is accepted.
func (s CountSet) Empty() bool { return s == 0 }

// String renders the members as a digit run, e.g. "23".
func (s CountSet) String() string {
	var sb strings.Builder
	for _, n := range s.Counts() {
		sb.WriteByte(byte('0' + n))
	}
	return sb.String()
}

// Expr renders the set as a boolean expression over the variable v, e.g.
// "sum == 2 || sum == 3". The empty set renders as "false".
func (s CountSet) Expr(v string) string {
	counts := s.Counts()
	if len(counts) == 0 {
		return "false"
	}
	terms := make([]string, len(counts))
	for i, n := range counts {
		terms[i] = v + " == " + strconv.Itoa(n)
	}
	return strings.Join(terms, " || ")
}

// Rule is a compiled life-like rule. It is immutable and safe to share.
type Rule struct {
	Born    CountSet
	Survive CountSet
}

// Conway is B3/S23.
var Conway = Rule{Born: 1 << 3, Survive: 1<<2 | 1<<3}

// Next returns the next state of a cell with the given state and neighbor sum.
func (r Rule) Next(alive uint8, sum int) uint8 {
	set := r.Born
	if alive != 0 {
		set = r.Survive
	}
	if set.Contains(sum) {
		return 1
	}
	return 0
}

// Table expands the rule into a lookup indexed by [state][sum].
func (r Rule) Table() (t [2][MaxCount + 1]uint8) {
	for sum := 0; sum <= MaxCount; sum++ {
		t[0][sum] = r.Next(0, sum)
		t[1][sum] = r.Next(1, sum)
	}
	return t
}

// String renders the canonical rule string.
func (r Rule) String() string {
	return "B" + r.Born.String() + "/S" + r.Survive.String()
}

// Parse compiles a rule of the form B<digits>/S<digits>. An empty digit run
// accepts no count.
func Parse(s string) (Rule, error) {
	if !strings.HasPrefix(s, "B") {
		return Rule{}, errors.Wrapf(ErrInvalidRuleFormat, "[Parse] %q has no B marker", s)
	}
	born, survive, ok := strings.Cut(s[1:], "/S")
	if !ok {
		return Rule{}, errors.Wrapf(ErrInvalidRuleFormat, "[Parse] %q has no /S marker", s)
	}
	b, err := parseDigits(born)
	if err != nil {
		return Rule{}, errors.Wrapf(err, "[Parse] birth counts of %q", s)
	}
	sv, err := parseDigits(survive)
	if err != nil {
		return Rule{}, errors.Wrapf(err, "[Parse] survival counts of %q", s)
	}
	return Rule{Born: b, Survive: sv}, nil
}

// MustParse is Parse for rule literals; it panics on error.
func MustParse(s string) Rule {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseDigits(run string) (CountSet, error) {
	var set CountSet
	for _, ch := range run {
		if ch < '0' || ch > '0'+MaxCount {
			return 0, errors.Wrapf(ErrInvalidRuleDigit, "%q", ch)
		}
		set |= 1 << (ch - '0')
	}
	return set, nil
}
