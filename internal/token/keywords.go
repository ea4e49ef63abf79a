package token

var keywords = map[string]Kind{
	"let":    KwLet,
	"fn":     KwFn,
	"pub":    KwPub,
	"extern": KwExtern,
	"syntax": KwSyntax,
	"if":     KwIf,
	"else":   KwElse,
	"is":     KwIs,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsKeywordName reports whether name collides with a reserved word.
// Used by the grammar registry to reject extension names that would
// shadow the fixed grammar.
func IsKeywordName(name string) bool {
	_, ok := keywords[name]
	return ok
}
