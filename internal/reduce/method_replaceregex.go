package reduce

import "context"

// newReplaceRegexMethod implements "replace_regex", the bulk of the
// transformation catalogue: two ordered lists of (pattern, replacement)
// rules. Unbounded rules apply wherever their pattern matches at pos;
// border-delimited rules additionally require the match be flanked on
// both sides by BORDER-or-whitespace (BSP).
//
// Every rule is tried in catalogue order at the current pos; the first
// accepted candidate ends the call for this position.
func newReplaceRegexMethod() *Method {
	return &Method{
		name:     MethodReplaceRegex,
		priority: canonicalPriority[MethodReplaceRegex],
		tryAt:    tryReplaceRegex,
	}
}

func tryReplaceRegex(ctx context.Context, e *Engine, pos *int) bool {
	i := *pos

	for idx, rule := range unboundedRules {
		if tryUnboundedRule(ctx, e, i, idx, rule) {
			return true
		}
	}

	for idx, rule := range borderDelimitedRules {
		if tryBorderRule(ctx, e, i, idx, rule) {
			return true
		}
	}

	for idx, shape := range subExprShapes {
		if tryShapeVariants(ctx, e, i, idx, shape) {
			return true
		}
	}

	return false
}

// regexRule matches a fixed pattern starting at pos and produces its
// replacement text.
type regexRule struct {
	label string
	match func(b *Buffer, pos int) (end int, ok bool)
	repl  string
}

func tryUnboundedRule(ctx context.Context, e *Engine, pos, idx int, rule regexRule) bool {
	b := e.Buffer()

	end, ok := rule.match(b, pos)
	if !ok {
		return false
	}

	return tryEditRule(ctx, e, MethodReplaceRegex, idx, rule.label, pos, pos, end, rule.repl, false)
}

func tryBorderRule(ctx context.Context, e *Engine, pos, idx int, rule regexRule) bool {
	b := e.Buffer()

	end, ok := rule.match(b, pos)
	if !ok {
		return false
	}

	if !atBorder(b, pos, end) {
		return false
	}

	if infiniteLoopGuard(b, pos, end, rule.repl) {
		return false
	}

	return tryEditRule(ctx, e, MethodReplaceRegex, idx, rule.label, pos, pos, end, rule.repl, false)
}

// infiniteLoopGuard guards against rules that would produce the exact
// border-flanked text they just matched: skip when
// repl is "0" (or starts with "0,") and the buffer already shows a
// border-flanked "0" (or "0,") at pos, and the analogous case for "1".
func infiniteLoopGuard(b *Buffer, pos, end int, repl string) bool {
	for _, digit := range []string{"0", "1"} {
		if repl != digit && repl != digit+"," {
			continue
		}

		if !hasPrefixAt(b, pos, digit) {
			continue
		}

		digitEnd := pos + len(digit)
		if atBorder(b, pos, digitEnd) {
			return true
		}
	}

	return false
}

var unboundedRules = []regexRule{
	{label: "delete-parens", match: matchOpenerSpan('(', matchParens), repl: ""},
	{label: "delete-braces", match: matchOpenerSpan('{', matchBraces), repl: ""},
	{label: "delete-assign-brace-init", match: matchAssignBraceInit, repl: ""},
	{label: "digits-colon-semi", match: matchDigitsColonSemi, repl: ";"},
	{label: "delete-semi", match: matchLiteral(";"), repl: ""},
	{label: "normalize-compound-assign", match: matchCompoundAssign, repl: "="},
	{label: "delete-unary-plus", match: matchLiteral("+"), repl: ""},
	{label: "delete-unary-minus", match: matchLiteral("-"), repl: ""},
	{label: "delete-unary-not", match: matchLiteral("!"), repl: ""},
	{label: "delete-unary-complement", match: matchLiteral("~"), repl: ""},
	{label: "delete-string-literal-comma", match: matchStringLiteralThenComma, repl: ""},
	{label: "delete-string-literal", match: matchStringLiteral, repl: ""},
}

var integerTypeKeywords = []string{
	"short", "long", "char", "signed", "unsigned", "int",
}

var borderDelimitedRules = []regexRule{
	{label: "labeled-statement", match: matchLabeledStatement, repl: ""},
	{label: "goto-statement", match: matchGotoStatement, repl: ""},
	{label: "int-type-keyword", match: matchIntegerTypeKeyword, repl: "int"},
	{label: "argc-argv", match: matchLiteral("int argc, char *argv[]"), repl: "void"},
	{label: "int-decl", match: matchTypedDeclToSemi("int"), repl: ""},
	{label: "for-keyword", match: matchKeywordRule("for"), repl: ""},
	{label: "if-cond", match: matchIfCond, repl: ""},
	{label: "struct-decl", match: matchTypedDeclToSemi("struct"), repl: ""},
	{label: "union-decl", match: matchTypedDeclToSemi("union"), repl: ""},
	{label: "full-func-def", match: matchFreeFuncDef, repl: ""},
	{label: "call-comma-zero", match: matchCallThenComma, repl: "0"},
	{label: "call-comma-empty", match: matchCallThenComma, repl: ""},
	{label: "call-zero", match: matchCall, repl: "0"},
	{label: "call-empty", match: matchCall, repl: ""},
}

func matchOpenerSpan(open byte, match func(*Buffer, int) (int, bool)) func(*Buffer, int) (int, bool) {
	return func(b *Buffer, pos int) (int, bool) {
		if pos >= b.Len() || b.At(pos) != open {
			return 0, false
		}

		closeIdx, ok := match(b, pos)
		if !ok {
			return 0, false
		}

		return closeIdx + 1, true
	}
}

func matchLiteral(s string) func(*Buffer, int) (int, bool) {
	return func(b *Buffer, pos int) (int, bool) {
		if hasPrefixAt(b, pos, s) {
			return pos + len(s), true
		}

		return 0, false
	}
}

func matchKeywordRule(kw string) func(*Buffer, int) (int, bool) {
	return func(b *Buffer, pos int) (int, bool) {
		return matchKeyword(b, pos, kw)
	}
}

// matchAssignBraceInit matches "= { ... }" (an aggregate initializer)
// starting at pos.
func matchAssignBraceInit(b *Buffer, pos int) (int, bool) {
	if pos >= b.Len() || b.At(pos) != '=' {
		return 0, false
	}

	j := skipSpaces(b, pos+1)
	if j >= b.Len() || b.At(j) != '{' {
		return 0, false
	}

	closeIdx, ok := matchBraces(b, j)
	if !ok {
		return 0, false
	}

	return closeIdx + 1, true
}

// matchDigitsColonSemi matches ": digits ;".
func matchDigitsColonSemi(b *Buffer, pos int) (int, bool) {
	if pos >= b.Len() || b.At(pos) != ':' {
		return 0, false
	}

	i := skipSpaces(b, pos+1)
	start := i

	for i < b.Len() && isDigit(b.At(i)) {
		i++
	}

	if i == start {
		return 0, false
	}

	i = skipSpaces(b, i)
	if i >= b.Len() || b.At(i) != ';' {
		return 0, false
	}

	return i + 1, true
}

var compoundAssignOps = []string{
	"<<=", ">>=", "^=", "|=", "&=", "+=", "-=", "*=", "/=", "%=",
}

func matchCompoundAssign(b *Buffer, pos int) (int, bool) {
	for _, op := range compoundAssignOps {
		if hasPrefixAt(b, pos, op) {
			return pos + len(op), true
		}
	}

	return 0, false
}

// matchStringLiteral matches a double-quoted string, honoring
// backslash-escaped quotes.
func matchStringLiteral(b *Buffer, pos int) (int, bool) {
	if pos >= b.Len() || b.At(pos) != '"' {
		return 0, false
	}

	i := pos + 1
	for i < b.Len() {
		switch b.At(i) {
		case '\\':
			i += 2
			continue
		case '"':
			return i + 1, true
		}

		i++
	}

	return 0, false
}

func matchStringLiteralThenComma(b *Buffer, pos int) (int, bool) {
	end, ok := matchStringLiteral(b, pos)
	if !ok {
		return 0, false
	}

	if end >= b.Len() || b.At(end) != ',' {
		return 0, false
	}

	return end + 1, true
}

// matchLabeledStatement matches "IDNUM :" (a goto label).
func matchLabeledStatement(b *Buffer, pos int) (int, bool) {
	end, ok := matchIDNUM(b, pos)
	if !ok {
		return 0, false
	}

	i := skipSpaces(b, end)
	if i >= b.Len() || b.At(i) != ':' {
		return 0, false
	}

	return i + 1, true
}

// matchGotoStatement matches "goto IDNUM ;".
func matchGotoStatement(b *Buffer, pos int) (int, bool) {
	end, ok := matchKeyword(b, pos, "goto")
	if !ok {
		return 0, false
	}

	i := skipSpaces(b, end)
	if i == end {
		return 0, false
	}

	idEnd, ok := matchIDNUM(b, i)
	if !ok {
		return 0, false
	}

	i = skipSpaces(b, idEnd)
	if i >= b.Len() || b.At(i) != ';' {
		return 0, false
	}

	return i + 1, true
}

func matchIntegerTypeKeyword(b *Buffer, pos int) (int, bool) {
	for _, kw := range integerTypeKeywords {
		if end, ok := matchKeyword(b, pos, kw); ok {
			return end, true
		}
	}

	return 0, false
}

// matchTypedDeclToSemi matches "keyword ... ;", scanning forward for the
// next top-level ';' (not nested inside parens, braces, or brackets).
func matchTypedDeclToSemi(keyword string) func(*Buffer, int) (int, bool) {
	return func(b *Buffer, pos int) (int, bool) {
		end, ok := matchKeyword(b, pos, keyword)
		if !ok {
			return 0, false
		}

		depth := 0

		for i := end; i < b.Len(); i++ {
			switch b.At(i) {
			case '(', '{', '[':
				depth++
			case ')', '}', ']':
				depth--
			case ';':
				if depth == 0 {
					return i + 1, true
				}
			}
		}

		return 0, false
	}
}

// matchIfCond matches "if ( ... )".
func matchIfCond(b *Buffer, pos int) (int, bool) {
	end, ok := matchKeyword(b, pos, "if")
	if !ok {
		return 0, false
	}

	i := skipSpaces(b, end)
	if i >= b.Len() || b.At(i) != '(' {
		return 0, false
	}

	closeIdx, ok := matchParens(b, i)
	if !ok {
		return 0, false
	}

	return closeIdx + 1, true
}

// matchFreeFuncDef matches a full function definition regardless of
// name, for deletion.
func matchFreeFuncDef(b *Buffer, pos int) (int, bool) {
	end, _, ok := matchFUNC(b, pos, "")
	return end, ok
}

func matchCallThenComma(b *Buffer, pos int) (int, bool) {
	end, ok := matchCall(b, pos)
	if !ok {
		return 0, false
	}

	if end >= b.Len() || b.At(end) != ',' {
		return 0, false
	}

	return end + 1, true
}

// subExprShape names one of the five sub-expression shapes replace_regex
// applies its seven S/S,/,S variants to.
type subExprShape struct {
	label string
	match func(b *Buffer, pos int) (end int, ok bool)
}

var subExprShapes = []subExprShape{
	{label: "fullvar-binop-fullvar", match: matchShapeFullvarBinopFullvar},
	{label: "fullvar-binop", match: matchShapeFullvarBinop},
	{label: "binop-fullvar", match: matchShapeBinopFullvar},
	{label: "fullvar", match: matchFULLVAR},
	{label: "ternary", match: matchShapeTernary},
}

func matchShapeFullvarBinopFullvar(b *Buffer, pos int) (int, bool) {
	aEnd, ok := matchFULLVAR(b, pos)
	if !ok {
		return 0, false
	}

	i := skipSpaces(b, aEnd)

	opEnd, ok := matchBINOP(b, i)
	if !ok {
		return 0, false
	}

	i = skipSpaces(b, opEnd)

	cEnd, ok := matchFULLVAR(b, i)
	if !ok {
		return 0, false
	}

	return cEnd, true
}

func matchShapeFullvarBinop(b *Buffer, pos int) (int, bool) {
	aEnd, ok := matchFULLVAR(b, pos)
	if !ok {
		return 0, false
	}

	i := skipSpaces(b, aEnd)

	return matchBINOP(b, i)
}

func matchShapeBinopFullvar(b *Buffer, pos int) (int, bool) {
	opEnd, ok := matchBINOP(b, pos)
	if !ok {
		return 0, false
	}

	i := skipSpaces(b, opEnd)

	return matchFULLVAR(b, i)
}

// matchShapeTernary matches "a ? b : c" the same way tryTernary does, but
// only needs the overall span for replace_regex's S/S,/,S variants.
func matchShapeTernary(b *Buffer, pos int) (int, bool) {
	aEnd, ok := matchFULLVAR(b, pos)
	if !ok {
		return 0, false
	}

	i := skipSpaces(b, aEnd)
	if i >= b.Len() || b.At(i) != '?' {
		return 0, false
	}

	i = skipSpaces(b, i+1)

	bEnd, ok := matchFULLVAR(b, i)
	if !ok {
		return 0, false
	}

	i = skipSpaces(b, bEnd)
	if i >= b.Len() || b.At(i) != ':' {
		return 0, false
	}

	i = skipSpaces(b, i+1)

	return matchFULLVAR(b, i)
}

// tryShapeVariants offers the seven S/S,/,S variants for one
// sub-expression shape at pos, in catalogue order: replace S with "0",
// "1", ""; replace "S," with "0,", "1,", ""; replace ",S" with "".
func tryShapeVariants(ctx context.Context, e *Engine, pos, idx int, shape subExprShape) bool {
	b := e.Buffer()

	end, ok := shape.match(b, pos)
	if !ok {
		return false
	}

	if atBorder(b, pos, end) {
		for _, repl := range []string{"0", "1", ""} {
			if infiniteLoopGuard(b, pos, end, repl) {
				continue
			}

			if tryEditRule(ctx, e, MethodReplaceRegex, idx, shape.label+":S", pos, pos, end, repl, false) {
				return true
			}
		}
	}

	if end < b.Len() && b.At(end) == ',' {
		commaEnd := end + 1
		if atBorder(b, pos, commaEnd) {
			for _, repl := range []string{"0,", "1,", ""} {
				if infiniteLoopGuard(b, pos, commaEnd, repl) {
					continue
				}

				if tryEditRule(ctx, e, MethodReplaceRegex, idx, shape.label+":S,", pos, pos, commaEnd, repl, false) {
					return true
				}
			}
		}
	}

	if pos > 0 && b.At(pos-1) == ',' {
		commaStart := pos - 1
		if atBorder(b, commaStart, end) {
			if tryEditRule(ctx, e, MethodReplaceRegex, idx, shape.label+":,S", pos, commaStart, end, "", false) {
				return true
			}
		}
	}

	return false
}
