package reduce

import "strings"

// This file implements the Pattern Catalogue of spec.md §3: a hand-written
// matcher for each named pattern, anchored at an arbitrary byte offset.
// Every matchX function returns the end offset (exclusive) of the match
// starting at pos and true, or (0, false) if pos does not start a match of
// that pattern. None of them skip leading whitespace; callers that need a
// border or whitespace before the pattern check that separately (see
// matchBorder/matchBSP below and the border-delimited rules in
// method_replaceregex.go).

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentChar(c byte) bool { return isAlpha(c) || isDigit(c) }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// matchIDNUM implements IDNUM: an optional leading '+' or '-', then one or
// more of [0-9A-Za-z_].
func matchIDNUM(b *Buffer, pos int) (int, bool) {
	i := pos
	if i < b.Len() && (b.At(i) == '+' || b.At(i) == '-') {
		i++
	}

	start := i
	for i < b.Len() && isIdentChar(b.At(i)) {
		i++
	}

	if i == start {
		return 0, false
	}

	return i, true
}

// matchPEXPR implements PEXPR: either IDNUM or a balanced-parenthesis run.
func matchPEXPR(b *Buffer, pos int) (int, bool) {
	if pos < b.Len() && b.At(pos) == '(' {
		if end, ok := matchParens(b, pos); ok {
			return end + 1, true
		}

		return 0, false
	}

	return matchIDNUM(b, pos)
}

// matchFULLVAR implements FULLVAR: zero or more '&'/'*' prefixes, then
// PEXPR, then zero or more suffixes '.IDNUM' or '[IDNUM]'.
func matchFULLVAR(b *Buffer, pos int) (int, bool) {
	i := pos
	for i < b.Len() && (b.At(i) == '&' || b.At(i) == '*') {
		i++
	}

	end, ok := matchPEXPR(b, i)
	if !ok {
		return 0, false
	}

	i = end

	for {
		if i < b.Len() && b.At(i) == '.' {
			if e, ok := matchIDNUM(b, i+1); ok {
				i = e
				continue
			}

			break
		}

		if i < b.Len() && b.At(i) == '[' {
			closeIdx, ok := matchBrackets(b, i)
			if !ok {
				break
			}

			if e, ok := matchIDNUM(b, i+1); !ok || e != closeIdx {
				break
			}

			i = closeIdx + 1

			continue
		}

		break
	}

	return i, true
}

// binaryOperators lists BINOP alternatives longest-first so a greedy match
// prefers "<=" over "<", "&&" over "&", etc.
var binaryOperators = []string{
	"<=", ">=", "==", "!=", "&&", "||", "<<", ">>",
	"+", "-", "%", "/", "*", "<", ">", "=", "|", "&", "^",
}

// matchBINOP implements BINOP.
func matchBINOP(b *Buffer, pos int) (int, bool) {
	for _, op := range binaryOperators {
		if hasPrefixAt(b, pos, op) {
			return pos + len(op), true
		}
	}

	return 0, false
}

func hasPrefixAt(b *Buffer, pos int, s string) bool {
	if pos+len(s) > b.Len() {
		return false
	}

	return b.Slice(pos, pos+len(s)) == s
}

// borderChars is BORDER: any one of these flanks a border-delimited rule.
const borderChars = "*{([:,})];"

func isBorderChar(c byte) bool {
	return strings.IndexByte(borderChars, c) >= 0
}

// matchBorder matches a single BORDER byte at pos.
func matchBorder(b *Buffer, pos int) (int, bool) {
	if pos < b.Len() && isBorderChar(b.At(pos)) {
		return pos + 1, true
	}

	return 0, false
}

// matchBSP matches BORDER or a single whitespace byte at pos.
func matchBSP(b *Buffer, pos int) (int, bool) {
	if pos >= b.Len() {
		return 0, false
	}

	if isBorderChar(b.At(pos)) || isSpace(b.At(pos)) {
		return pos + 1, true
	}

	return 0, false
}

// atBorder reports whether pos is flanked on both sides by BSP: the byte
// immediately before start and the byte at end (exclusive end of the
// match) each satisfy BORDER-or-whitespace. Because the buffer always
// carries sentinel spaces, this never needs special-casing at offset 0 or
// at the final index.
func atBorder(b *Buffer, start, end int) bool {
	if start <= 0 || end >= b.Len() {
		return false
	}

	_, leftOK := matchBSP(b, start-1)
	_, rightOK := matchBSP(b, end)

	return leftOK && rightOK
}

// retTypeKeywords is RETTYPE's flat keyword list.
var retTypeKeywords = []string{
	"int", "void", "short", "long", "char", "signed", "unsigned", "const", "static",
}

// matchRETTYPE implements RETTYPE: one of the flat keywords, or
// "union U<digits>", or "struct S<digits>".
func matchRETTYPE(b *Buffer, pos int) (int, bool) {
	if end, ok := matchKeyword(b, pos, "union"); ok {
		if e, ok := matchTaggedName(b, end, 'U'); ok {
			return e, true
		}
	}

	if end, ok := matchKeyword(b, pos, "struct"); ok {
		if e, ok := matchTaggedName(b, end, 'S'); ok {
			return e, true
		}
	}

	for _, kw := range retTypeKeywords {
		if end, ok := matchKeyword(b, pos, kw); ok {
			return end, true
		}
	}

	return 0, false
}

// matchKeyword matches a literal keyword at pos, requiring it not be
// immediately followed by another identifier character (so "int" doesn't
// match the prefix of "internal").
func matchKeyword(b *Buffer, pos int, kw string) (int, bool) {
	if !hasPrefixAt(b, pos, kw) {
		return 0, false
	}

	end := pos + len(kw)
	if end < b.Len() && isIdentChar(b.At(end)) {
		return 0, false
	}

	return end, true
}

// matchTaggedName matches whitespace, then tagLetter followed by one or
// more digits (e.g. "U12" after "union ").
func matchTaggedName(b *Buffer, pos int, tagLetter byte) (int, bool) {
	i := pos
	for i < b.Len() && isSpace(b.At(i)) {
		i++
	}

	if i == pos {
		return 0, false
	}

	if i >= b.Len() || b.At(i) != tagLetter {
		return 0, false
	}

	i++
	start := i

	for i < b.Len() && isDigit(b.At(i)) {
		i++
	}

	if i == start {
		return 0, false
	}

	return i, true
}

// matchFUNCTYPE implements FUNCTYPE: one or more RETTYPE or '*' runs
// separated by whitespace.
func matchFUNCTYPE(b *Buffer, pos int) (int, bool) {
	i := pos
	matchedAny := false

	for {
		if i < b.Len() && b.At(i) == '*' {
			i++
			matchedAny = true
		} else if end, ok := matchRETTYPE(b, i); ok {
			i = end
			matchedAny = true
		} else {
			break
		}

		// Allow (but don't require) whitespace before the next fragment;
		// stop once no further RETTYPE/'*' follows.
		j := i
		for j < b.Len() && isSpace(b.At(j)) {
			j++
		}

		if j == i {
			break
		}

		nextCh := byte(0)
		if j < b.Len() {
			nextCh = b.At(j)
		}

		if nextCh == '*' {
			i = j
			continue
		}

		if _, ok := matchRETTYPE(b, j); ok {
			i = j
			continue
		}

		break
	}

	if !matchedAny {
		return 0, false
	}

	return i, true
}

func skipSpaces(b *Buffer, pos int) int {
	i := pos
	for i < b.Len() && isSpace(b.At(i)) {
		i++
	}

	return i
}

// matchPROTO implements PROTO(name): FUNCTYPE whitespace name whitespace
// balanced '(' ')' ';'. When name == "" it is a free variant that accepts
// any IDNUM and returns the captured name via capturedName.
func matchPROTO(b *Buffer, pos int, name string) (end int, capturedName string, ok bool) {
	ftEnd, ok := matchFUNCTYPE(b, pos)
	if !ok {
		return 0, "", false
	}

	i := skipSpaces(b, ftEnd)
	if i == ftEnd {
		return 0, "", false
	}

	nameEnd, nameOK := matchNameToken(b, i, name)
	if !nameOK {
		return 0, "", false
	}

	captured := b.Slice(i, nameEnd)

	i = skipSpaces(b, nameEnd)
	if i >= b.Len() || b.At(i) != '(' {
		return 0, "", false
	}

	closeParen, ok := matchParens(b, i)
	if !ok {
		return 0, "", false
	}

	i = closeParen + 1
	if i >= b.Len() || b.At(i) != ';' {
		return 0, "", false
	}

	return i + 1, captured, true
}

// matchFUNC implements FUNC(name): as PROTO but terminated by a balanced
// '{' '}' body instead of ';'.
func matchFUNC(b *Buffer, pos int, name string) (end int, capturedName string, ok bool) {
	ftEnd, ok := matchFUNCTYPE(b, pos)
	if !ok {
		return 0, "", false
	}

	i := skipSpaces(b, ftEnd)
	if i == ftEnd {
		return 0, "", false
	}

	nameEnd, nameOK := matchNameToken(b, i, name)
	if !nameOK {
		return 0, "", false
	}

	captured := b.Slice(i, nameEnd)

	i = skipSpaces(b, nameEnd)
	if i >= b.Len() || b.At(i) != '(' {
		return 0, "", false
	}

	closeParen, ok := matchParens(b, i)
	if !ok {
		return 0, "", false
	}

	i = skipSpaces(b, closeParen+1)
	if i >= b.Len() || b.At(i) != '{' {
		return 0, "", false
	}

	closeBrace, ok := matchBraces(b, i)
	if !ok {
		return 0, "", false
	}

	return closeBrace + 1, captured, true
}

// matchNameToken matches an identifier token at pos. If name is non-empty,
// it must match exactly (the "name" variant of PROTO/FUNC); otherwise any
// identifier is accepted (the "free" variant).
func matchNameToken(b *Buffer, pos int, name string) (int, bool) {
	end, ok := matchIdentOnly(b, pos)
	if !ok {
		return 0, false
	}

	if name != "" && b.Slice(pos, end) != name {
		return 0, false
	}

	return end, true
}

// matchIdentOnly matches a bare identifier (no leading sign, unlike IDNUM)
// since function/type names never carry a sign prefix.
func matchIdentOnly(b *Buffer, pos int) (int, bool) {
	if pos >= b.Len() || !isAlpha(b.At(pos)) {
		return 0, false
	}

	i := pos + 1
	for i < b.Len() && isIdentChar(b.At(i)) {
		i++
	}

	return i, true
}

// matchCall implements CALL: an identifier (IDNUM without a sign or a
// leading digit) followed by a balanced parenthesis run.
func matchCall(b *Buffer, pos int) (int, bool) {
	identEnd, ok := matchIdentOnly(b, pos)
	if !ok {
		return 0, false
	}

	if identEnd >= b.Len() || b.At(identEnd) != '(' {
		return 0, false
	}

	closeParen, ok := matchParens(b, identEnd)
	if !ok {
		return 0, false
	}

	return closeParen + 1, true
}
