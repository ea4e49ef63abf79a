package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadSlotRef         Code = 1004

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectExpression   Code = 2004
	SynExpectType         Code = 2005
	SynExpectSemicolon    Code = 2006
	SynExpectColon        Code = 2007
	SynUnclosedParen      Code = 2008
	SynUnclosedBrace      Code = 2009
	SynModifierOrder      Code = 2010
	SynUnknownConstruct   Code = 2011
	SynExpectCategory     Code = 2012
	SynExpectClause       Code = 2013
	SynEmptyPattern       Code = 2014
	SynExpectDirective    Code = 2015
	SynUnclosedTemplate   Code = 2016
	SynDuplicateSlot      Code = 2017
	SynSlotOutsideMacro   Code = 2018

	// Макро-движок (регистрация и eval)
	MacInfo             Code = 4000
	MacDuplicateRule    Code = 4001
	MacReservedName     Code = 4002
	MacUnboundSlot      Code = 4003
	MacNoMatchingBranch Code = 4004
	MacUserRaise        Code = 4005
	MacNoOutput         Code = 4006
	MacCategoryMismatch Code = 4007
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadNumber:          "Malformed numeric literal",
	LexBadSlotRef:         "Malformed capture-slot reference",

	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnexpectedTopLevel: "Unexpected top-level construct",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectExpression:   "Expected expression",
	SynExpectType:         "Expected type",
	SynExpectSemicolon:    "Expected ';'",
	SynExpectColon:        "Expected ':'",
	SynUnclosedParen:      "Unclosed '('",
	SynUnclosedBrace:      "Unclosed '{'",
	SynModifierOrder:      "Declaration modifiers out of order",
	SynUnknownConstruct:   "Unknown construct",
	SynExpectCategory:     "Expected extension category",
	SynExpectClause:       "Expected parse/eval clause",
	SynEmptyPattern:       "Empty parse pattern",
	SynExpectDirective:    "Expected eval directive",
	SynUnclosedTemplate:   "Unclosed code template",
	SynDuplicateSlot:      "Duplicate capture slot",
	SynSlotOutsideMacro:   "Capture slot outside syntax declaration",

	MacInfo:             "Macro information",
	MacDuplicateRule:    "Duplicate syntax rule",
	MacReservedName:     "Syntax rule name is reserved",
	MacUnboundSlot:      "Capture slot is not bound",
	MacNoMatchingBranch: "No matching eval branch",
	MacUserRaise:        "User diagnostic",
	MacNoOutput:         "Eval produced no lowering",
	MacCategoryMismatch: "Extension used in wrong position",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("MAC%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
