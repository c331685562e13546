package reduce

// matchBalanced walks forward from an opening bracket at position open
// (where b.At(open) == openCh), counting +1 on openCh and -1 on closeCh,
// and returns the position of the closing bracket that brings the count
// back to zero. It returns (0, false) if the buffer ends first: unbalanced
// input yields no match and the caller skips the attempt.
func matchBalanced(b *Buffer, open int, openCh, closeCh byte) (int, bool) {
	if open >= b.Len() || b.At(open) != openCh {
		return 0, false
	}

	depth := 0
	for i := open; i < b.Len(); i++ {
		switch b.At(i) {
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

// matchParens finds the matching ')' for a '(' at position open.
func matchParens(b *Buffer, open int) (int, bool) {
	return matchBalanced(b, open, '(', ')')
}

// matchBraces finds the matching '}' for a '{' at position open.
func matchBraces(b *Buffer, open int) (int, bool) {
	return matchBalanced(b, open, '{', '}')
}

// matchBrackets finds the matching ']' for a '[' at position open.
func matchBrackets(b *Buffer, open int) (int, bool) {
	return matchBalanced(b, open, '[', ']')
}
