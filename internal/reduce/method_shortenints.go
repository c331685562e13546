package reduce

import "context"

// newShortenIntsMethod implements "shorten_ints" (spec.md §4.4): at pos,
// three ordered edits on an integer literal (optional sign and 0/0x
// prefix, hex/dec digits, optional U/L suffix): drop the first digit;
// drop the last integer suffix letter; drop the sign-and-base prefix.
//
// Each candidate uses the literal '+'/'-' byte directly; spec.md notes
// the source's own pattern for the sign accidentally matched it as a
// regex metacharacter in one place. This matches the bytes literally
// throughout, not as regex syntax, so that bug has no analogue here.
func newShortenIntsMethod() *Method {
	return &Method{
		name:     MethodShortenInts,
		priority: canonicalPriority[MethodShortenInts],
		tryAt:    tryShortenInts,
	}
}

// tryShortenInts offers its three candidates in turn, stopping at the
// first one the oracle accepts (spec.md §4.4: "Failing a candidate
// reverts and proceeds to the next candidate within the same call" --
// implying a later candidate is only reached once the earlier ones have
// been rejected and reverted).
//
// Digit-drop only applies when more than one digit remains, since
// dropping the sole digit of a single-digit literal would leave an
// ill-formed base prefix (e.g. "0x" with no digits) rather than a
// shorter valid literal. Suffix letters are tried before the
// sign-and-base prefix so a literal shrinks one suffix letter at a time
// before its prefix is touched (spec.md §8 scenario 3: "0x1ULL" ->
// "0x1UL" -> "0x1U" -> "0x1" -> "1").
func tryShortenInts(ctx context.Context, e *Engine, pos *int) bool {
	b := e.Buffer()
	i := *pos

	lit, ok := matchIntLiteral(b, i)
	if !ok {
		return false
	}

	if lit.digitsEnd-lit.firstDigitPos > 1 {
		if tryEdit(ctx, e, MethodShortenInts, i, lit.firstDigitPos, lit.firstDigitPos+1, "", false) {
			return true
		}
	}

	if lit.suffixEnd > lit.digitsEnd {
		// Drop one trailing suffix letter at a time (not the whole
		// suffix in one edit), so e.g. "0x1ULL" shrinks via "0x1UL" and
		// "0x1U" rather than jumping straight to "0x1".
		if tryEdit(ctx, e, MethodShortenInts, i, lit.suffixEnd-1, lit.suffixEnd, "", false) {
			return true
		}
	}

	if lit.prefixEnd > i {
		if tryEdit(ctx, e, MethodShortenInts, i, i, lit.prefixEnd, "", false) {
			return true
		}
	}

	return false
}

type intLiteral struct {
	// firstDigitPos is the offset of the first digit proper (after any
	// sign and "0x"/"0" base prefix).
	firstDigitPos int
	// prefixEnd is the offset just past the sign and base prefix, equal
	// to i (the literal's start) when neither is present.
	prefixEnd int
	// digitsEnd is the offset just past the last digit, before any
	// U/L suffix.
	digitsEnd int
	// suffixEnd is the offset just past any trailing U/L suffix letters,
	// equal to digitsEnd when there is none.
	suffixEnd int
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIntSuffixLetter(c byte) bool {
	return c == 'u' || c == 'U' || c == 'l' || c == 'L'
}

// matchIntLiteral matches an integer literal at pos: optional sign,
// optional "0x"/"0X" hex prefix or bare "0" octal/decimal-zero prefix,
// digits, optional U/L suffix letters. Rejects a match immediately
// followed by another identifier character, since that means pos starts
// a larger token (e.g. an identifier beginning with digits is not valid
// C, but "123abc" inside a macro argument should not be torn apart).
func matchIntLiteral(b *Buffer, pos int) (intLiteral, bool) {
	i := pos

	if i < b.Len() && (b.At(i) == '+' || b.At(i) == '-') {
		i++
	}

	prefixEnd := i
	firstDigitPos := i
	var digitsEnd int

	switch {
	case hasPrefixAt(b, i, "0x") || hasPrefixAt(b, i, "0X"):
		prefixEnd = i + 2
		firstDigitPos = prefixEnd
		digitsEnd = firstDigitPos

		for digitsEnd < b.Len() && isHexDigit(b.At(digitsEnd)) {
			digitsEnd++
		}

		if digitsEnd == firstDigitPos {
			return intLiteral{}, false
		}

	case i < b.Len() && b.At(i) == '0':
		prefixEnd = i + 1
		firstDigitPos = prefixEnd
		digitsEnd = firstDigitPos

		for digitsEnd < b.Len() && isDigit(b.At(digitsEnd)) {
			digitsEnd++
		}

	default:
		digitsEnd = i

		for digitsEnd < b.Len() && isDigit(b.At(digitsEnd)) {
			digitsEnd++
		}

		if digitsEnd == i {
			return intLiteral{}, false
		}
	}

	suffixEnd := digitsEnd
	for suffixEnd < b.Len() && isIntSuffixLetter(b.At(suffixEnd)) {
		suffixEnd++
	}

	if suffixEnd < b.Len() && isIdentChar(b.At(suffixEnd)) {
		return intLiteral{}, false
	}

	return intLiteral{
		firstDigitPos: firstDigitPos,
		prefixEnd:     prefixEnd,
		digitsEnd:     digitsEnd,
		suffixEnd:     suffixEnd,
	}, true
}
