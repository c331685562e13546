package reduce

import "context"

// indentOptions is the fixed pretty-printer option set for the "indent"
// method.
var indentOptions = []string{
	"-bad", "-bap", "-bc", "-cs", "-pcs", "-prs", "-saf", "-sai", "-saw", "-sob", "-ss", "-bl",
}

// newIndentMethod implements "indent": one-shot, write the buffer,
// invoke the external pretty-printer with a fixed option set, reload,
// and test the result with enlargement allowed.
func newIndentMethod() *Method {
	return &Method{
		name:        MethodIndent,
		priority:    canonicalPriority[MethodIndent],
		okToEnlarge: true,
		tryAt:       tryIndent,
	}
}

func tryIndent(ctx context.Context, e *Engine, pos *int) bool {
	if *pos != 0 {
		return false
	}

	b := e.Buffer()
	old := b.String()

	if err := b.Save(e.FS(), e.CFilePath()); err != nil {
		e.lastFatal = fatal(err)
		return false
	}

	if err := e.Runner().RunIndent(ctx, e.IndentPath(), indentOptions, e.CFilePath()); err != nil {
		e.lastFatal = fatal(err)
		return false
	}

	data, err := e.FS().ReadFile(e.CFilePath())
	if err != nil {
		e.lastFatal = fatal(err)
		return false
	}

	newText := NewBuffer(data).String() // reload with sentinels ensured
	if newText == old {
		return false
	}

	return tryEdit(ctx, e, MethodIndent, 0, 0, b.Len(), newText, true)
}
