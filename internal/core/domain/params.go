package domain

import "strconv"

// ParamDecimals is the fixed number of decimal places numeric parameters
// are formatted to before hashing. Two floats that differ only by
// representation noise below this precision produce the same fingerprint.
const ParamDecimals = 6

// Param is one node of an operation's parameter tree: the ordered,
// primitive-valued description of the artifact the operation produces.
// The tree has a canonical byte encoding so its fingerprint is stable
// across processes.
type Param interface {
	// AppendCanonical appends the node's canonical encoding to b.
	AppendCanonical(b []byte) []byte
}

// Str is a string leaf.
type Str string

// Num is a numeric leaf. It is encoded with ParamDecimals fixed decimal
// places.
type Num float64

// List is an ordered sequence of child nodes.
type List []Param

// AppendCanonical writes the raw string bytes followed by a NUL
// terminator. Parameter strings are identifiers and never contain NUL.
func (s Str) AppendCanonical(b []byte) []byte {
	b = append(b, s...)
	return append(b, 0)
}

// AppendCanonical writes the fixed-precision decimal form followed by a
// NUL terminator.
func (n Num) AppendCanonical(b []byte) []byte {
	b = strconv.AppendFloat(b, float64(n), 'f', ParamDecimals, 64)
	return append(b, 0)
}

// AppendCanonical writes the children between parentheses so that nesting
// is unambiguous.
func (l List) AppendCanonical(b []byte) []byte {
	b = append(b, '(')
	for _, child := range l {
		b = child.AppendCanonical(b)
	}
	return append(b, ')')
}

// CanonicalBytes returns the canonical encoding of a whole tree.
func CanonicalBytes(p Param) []byte {
	if p == nil {
		return nil
	}
	return p.AppendCanonical(nil)
}
