// Package text implements the string algorithms of strkit once, generically
// over the code unit type, and instantiates them per encoding through an
// encoding.Codec.
//
// Offsets passed to and returned from these functions are code unit offsets,
// never code point counts. Results are fresh slices unless a function documents
// that it returns the input (or a sub-slice of it) unchanged.
package text

import (
	"slices"
	"strings"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
)

// Policy selects how decode and encode errors are handled.
type Policy int

const (
	// PolicyStrict fails on the first decode or encode error.
	PolicyStrict Policy = iota
	// PolicyReplace substitutes the encoding's replacement code point.
	PolicyReplace
	// PolicyIgnore drops the offending code point.
	PolicyIgnore
)

// Sentinels shared by the algorithms.
const (
	NotFound       = -1 // Find and RFind result when sub is absent
	All            = -1 // Unlimited count for Replace and the split family
	DefaultTabSize = 4

	// Drop is returned by a translation lookup to delete a code point.
	Drop encoding.CodePoint = -1
)

var policyNames = []string{"strict", "replace", "ignore"}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return "unknown"
	}
	return policyNames[p]
}

// ParsePolicy resolves a policy name, case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	i := slices.Index(policyNames, strings.ToLower(name))
	if i < 0 {
		return PolicyStrict, errors.NewUsagef("policy", "unknown error policy %q", name)
	}
	return Policy(i), nil
}

// bounds clamps a start/end pair to a buffer of n units.
func bounds(n, start, end int) (int, int, bool) {
	start = max(start, 0)
	end = min(end, n)
	return start, end, start <= end
}

func isSpace[U encoding.Unit](u U) bool {
	return u == ' ' || (u >= 0x09 && u <= 0x0D)
}

// hasAt reports whether sub occurs in s at offset i.
func hasAt[U encoding.Unit](s, sub []U, i int) bool {
	return i+len(sub) <= len(s) && slices.Equal(s[i:i+len(sub)], sub)
}

// fillPoint decodes a single-code-point fill argument.
func fillPoint[U encoding.Unit](c encoding.Codec[U], op string, fill []U) error {
	if len(fill) == 0 || c.Next(fill, 0) != len(fill) || !c.Decode(fill, 0).Valid() {
		return errors.NewUsage(op, "fill character must be exactly one code point")
	}
	return nil
}

func decodeError(c interface{ Descriptor() encoding.Descriptor }, offset int, cp encoding.CodePoint) error {
	return errors.NewDecode(c.Descriptor().Name, offset, cp.Unit())
}

func encodeError(c interface{ Descriptor() encoding.Descriptor }, cp encoding.CodePoint) error {
	return errors.NewEncode(c.Descriptor().Name, int32(cp))
}
