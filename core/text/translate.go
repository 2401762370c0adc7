package text

import (
	"slices"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
)

// Translate maps every code point of s through lookup and re-encodes the
// result. lookup returns the replacement code point or Drop to delete it.
//
// Under PolicyStrict the first decode or encode error fails the call. Under
// PolicyReplace a malformed sequence is looked up as the replacement code
// point, and a mapped value that cannot be encoded becomes the replacement
// code point. Under PolicyIgnore both are dropped.
func Translate[U encoding.Unit](c encoding.Codec[U], s []U, lookup func(encoding.CodePoint) encoding.CodePoint, policy Policy) ([]U, error) {
	desc := c.Descriptor()
	out := make([]U, 0, len(s))
	for i := 0; i < len(s); i = c.Next(s, i) {
		cp := c.Decode(s, i)
		if !cp.Valid() {
			switch policy {
			case PolicyStrict:
				return nil, decodeError(c, i, cp)
			case PolicyIgnore:
				continue
			default:
				cp = desc.Replacement
			}
		}

		mapped := lookup(cp)
		if mapped == Drop {
			continue
		}
		var ok bool
		if out, ok = c.Append(out, mapped); ok {
			continue
		}
		switch policy {
		case PolicyStrict:
			return nil, encodeError(c, mapped)
		case PolicyReplace:
			out, _ = c.Append(out, desc.Replacement)
		}
	}
	return out, nil
}

type mapping struct {
	from, to encoding.CodePoint
}

// Table is an immutable translation table built by MakeTrans. Its Lookup
// method is suitable as the lookup function of Translate.
type Table struct {
	entries []mapping // sorted by from
}

// MakeTrans builds a table mapping from[i] to to[i] and deleting every code
// point in skip. from and to must have the same length. Later entries win over
// earlier ones and deletions win over mappings.
func MakeTrans(from, to, skip []encoding.CodePoint) (*Table, error) {
	if len(from) != len(to) {
		return nil, errors.NewUsagef("maketrans", "from and to differ in length (%d != %d)", len(from), len(to))
	}

	m := make(map[encoding.CodePoint]encoding.CodePoint, len(from)+len(skip))
	for i, cp := range from {
		m[cp] = to[i]
	}
	for _, cp := range skip {
		m[cp] = Drop
	}

	t := &Table{entries: make([]mapping, 0, len(m))}
	for k, v := range m {
		t.entries = append(t.entries, mapping{from: k, to: v})
	}
	slices.SortFunc(t.entries, func(a, b mapping) int {
		return int(a.from) - int(b.from)
	})
	return t, nil
}

// MakeTransUnits decodes its arguments with c and calls MakeTrans.
func MakeTransUnits[U encoding.Unit](c encoding.Codec[U], from, to, skip []U) (*Table, error) {
	for _, arg := range [][]U{from, to, skip} {
		for i := 0; i < len(arg); i = c.Next(arg, i) {
			if cp := c.Decode(arg, i); !cp.Valid() {
				return nil, errors.Wrap(decodeError(c, i, cp), "maketrans")
			}
		}
	}
	return MakeTrans(encoding.CodePoints(c, from), encoding.CodePoints(c, to), encoding.CodePoints(c, skip))
}

// Lookup returns the mapping for cp: a code point, Drop, or cp itself when the
// table has no entry.
func (t *Table) Lookup(cp encoding.CodePoint) encoding.CodePoint {
	i, found := slices.BinarySearchFunc(t.entries, cp, func(m mapping, target encoding.CodePoint) int {
		return int(m.from) - int(target)
	})
	if !found {
		return cp
	}
	return t.entries[i].to
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
