package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// SlotRef represents a capture-slot reference like $value.
	// Text holds the name without the leading '$'.
	SlotRef

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// StringLit represents a string literal; Text holds the decoded value.
	StringLit

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwSyntax represents the 'syntax' keyword.
	KwSyntax // syntax
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	Assign     // =
	Arrow      // ->
	Colon      // :
	ColonColon // ::
	Semicolon  // ;
	Comma      // ,
	Dot        // .
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	Backtick   // `
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	SlotRef:    "SlotRef",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	KwLet:      "let",
	KwFn:       "fn",
	KwPub:      "pub",
	KwExtern:   "extern",
	KwSyntax:   "syntax",
	KwIf:       "if",
	KwElse:     "else",
	KwIs:       "is",
	KwTrue:     "true",
	KwFalse:    "false",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Assign:     "=",
	Arrow:      "->",
	Colon:      ":",
	ColonColon: "::",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	Backtick:   "`",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
