package text

import (
	"iter"
	"slices"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
)

// Split splits s on runs of ASCII whitespace (space and 0x09..0x0D). Leading
// and trailing runs are skipped, so the result never holds empty fields. At
// most maxsplit splits are made; the last field then keeps its trailing
// whitespace. A negative maxsplit means no limit. Fields share storage with s.
func Split[U encoding.Unit](c encoding.Codec[U], s []U, maxsplit int) [][]U {
	var out [][]U
	i, n := 0, len(s)
	for {
		for i < n && isSpace(s[i]) {
			i++
		}
		if i == n {
			return out
		}
		if maxsplit == 0 {
			return append(out, s[i:])
		}
		j := i
		for j < n && !isSpace(s[j]) {
			j = c.Next(s, j)
		}
		out = append(out, s[i:j])
		i = j
		maxsplit--
	}
}

// RSplit is like Split but counts splits from the end.
func RSplit[U encoding.Unit](c encoding.Codec[U], s []U, maxsplit int) [][]U {
	var out [][]U
	j := len(s)
	for {
		for j > 0 && isSpace(s[j-1]) {
			j--
		}
		if j == 0 {
			break
		}
		if maxsplit == 0 {
			out = append(out, s[:j])
			break
		}
		i := j
		for i > 0 && !isSpace(s[i-1]) {
			i = c.Prev(s, i)
		}
		out = append(out, s[i:j])
		j = i
		maxsplit--
	}
	slices.Reverse(out)
	return out
}

// SplitSep splits s on every occurrence of sep, making at most maxsplit splits
// (negative for no limit). Adjacent separators produce empty fields. An empty
// sep is a usage error.
func SplitSep[U encoding.Unit](c encoding.Codec[U], s, sep []U, maxsplit int) ([][]U, error) {
	if len(sep) == 0 {
		return nil, errors.NewUsage("split", "empty separator")
	}
	var out [][]U
	prev := 0
	for i := 0; maxsplit != 0 && i+len(sep) <= len(s); {
		if !hasAt(s, sep, i) {
			i = c.Next(s, i)
			continue
		}
		out = append(out, s[prev:i])
		i += len(sep)
		prev = i
		maxsplit--
	}
	return append(out, s[prev:]), nil
}

// RSplitSep is like SplitSep but scans from the end, so a limited split keeps
// the leftmost remainder intact. The codec must be reversible.
func RSplitSep[U encoding.Unit](c encoding.Codec[U], s, sep []U, maxsplit int) ([][]U, error) {
	if len(sep) == 0 {
		return nil, errors.NewUsage("rsplit", "empty separator")
	}
	if !c.Descriptor().Reversible {
		return nil, errors.NewUsagef("rsplit", "encoding %s is not reversible", c.Descriptor().Name)
	}
	var out [][]U
	end := len(s)
	for i := len(s); maxsplit != 0 && i >= len(sep); {
		if !hasAt(s, sep, i-len(sep)) {
			i = c.Prev(s, i)
			continue
		}
		out = append(out, s[i:end])
		i -= len(sep)
		end = i
		maxsplit--
	}
	out = append(out, s[:end])
	slices.Reverse(out)
	return out, nil
}

// Join concatenates parts with sep between them. The result is sized up front
// and allocated once.
func Join[U encoding.Unit](sep []U, parts [][]U) []U {
	if len(parts) == 0 {
		return []U{}
	}
	size := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		size += len(p)
	}
	out := make([]U, 0, size)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, p...)
	}
	return out
}

// JoinSeq is like Join for a sequence whose length is not known in advance.
func JoinSeq[U encoding.Unit](sep []U, parts iter.Seq[[]U]) []U {
	out := []U{}
	first := true
	for p := range parts {
		if !first {
			out = append(out, sep...)
		}
		first = false
		out = append(out, p...)
	}
	return out
}
