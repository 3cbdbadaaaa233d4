// Package pyast represents the Python 2 AST that pymatch consumes.
//
// In a production system this tree would be produced by an external parser
// (the "upstream AST library" spec.md carves out of scope); pyast is our
// stand-in for that library, pared down to the node kinds and fields the
// grammar in spec.md §6 actually needs. Node is a single flat struct
// rather than one Go type per grammar production — the same shape other
// hand-rolled Python-AST-in-Go code in this codebase's reference corpus
// uses (a tagged Kind plus an assortment of named fields), adapted to
// carry the mutable attached Matcher spec.md §3 requires.
package pyast

// Kind tags the syntactic category of a Node.
type Kind int

const (
	KindInvalid Kind = iota

	// Top-level / statements
	KindModule
	KindFunctionDef
	KindClassDef
	KindReturn
	KindDelete
	KindAssign
	KindAugAssign
	KindFor
	KindWhile
	KindIf
	KindWith
	KindRaise
	KindTryExcept
	KindTryFinally
	KindExceptHandler
	KindAssert
	KindImport
	KindImportFrom
	KindGlobal
	KindExpr
	KindPass
	KindBreak
	KindContinue
	KindPrint
	KindYield
	KindSyntaxFreeLine

	// Expressions
	KindBoolOp
	KindBinOp
	KindUnaryOp
	KindLambda
	KindIfExp
	KindDict
	KindSet
	KindListComp
	KindSetComp
	KindDictComp
	KindGeneratorExp
	KindCompare
	KindCall
	KindNum
	KindStr
	KindAttribute
	KindSubscript
	KindName
	KindList
	KindTuple
	KindSlice
	KindIndex

	// Helper / structural node kinds
	KindArguments
	KindKeyword
	KindAlias
	KindComprehension

	// Operator tag kinds (an Op field holds one of these)
	KindAdd
	KindSub
	KindMult
	KindDiv
	KindFloorDiv
	KindMod
	KindPow
	KindLShift
	KindRShift
	KindBitAnd
	KindBitOr
	KindBitXor
	KindAnd
	KindOr
	KindNot
	KindUAdd
	KindUSub
	KindInvert
	KindEq
	KindNotEq
	KindLt
	KindLtE
	KindGt
	KindGtE
	KindIs
	KindIsNot
	KindIn
	KindNotIn
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var kindNames = map[Kind]string{
	KindModule: "Module", KindFunctionDef: "FunctionDef", KindClassDef: "ClassDef",
	KindReturn: "Return", KindDelete: "Delete", KindAssign: "Assign",
	KindAugAssign: "AugAssign", KindFor: "For", KindWhile: "While", KindIf: "If",
	KindWith: "With", KindRaise: "Raise", KindTryExcept: "TryExcept",
	KindTryFinally: "TryFinally", KindExceptHandler: "ExceptHandler",
	KindAssert: "Assert", KindImport: "Import", KindImportFrom: "ImportFrom",
	KindGlobal: "Global", KindExpr: "Expr", KindPass: "Pass", KindBreak: "Break",
	KindContinue: "Continue", KindPrint: "Print", KindYield: "Yield",
	KindSyntaxFreeLine: "SyntaxFreeLine", KindBoolOp: "BoolOp", KindBinOp: "BinOp",
	KindUnaryOp: "UnaryOp", KindLambda: "Lambda", KindIfExp: "IfExp",
	KindDict: "Dict", KindSet: "Set", KindListComp: "ListComp",
	KindSetComp: "SetComp", KindDictComp: "DictComp", KindGeneratorExp: "GeneratorExp",
	KindCompare: "Compare", KindCall: "Call", KindNum: "Num", KindStr: "Str",
	KindAttribute: "Attribute", KindSubscript: "Subscript", KindName: "Name",
	KindList: "List", KindTuple: "Tuple", KindSlice: "Slice", KindIndex: "Index",
	KindArguments: "arguments", KindKeyword: "keyword", KindAlias: "alias",
	KindComprehension: "comprehension",
	KindAdd:           "Add", KindSub: "Sub", KindMult: "Mult", KindDiv: "Div",
	KindFloorDiv: "FloorDiv", KindMod: "Mod", KindPow: "Pow", KindLShift: "LShift",
	KindRShift: "RShift", KindBitAnd: "BitAnd", KindBitOr: "BitOr", KindBitXor: "BitXor",
	KindAnd: "And", KindOr: "Or", KindNot: "Not", KindUAdd: "UAdd", KindUSub: "USub",
	KindInvert: "Invert", KindEq: "Eq", KindNotEq: "NotEq", KindLt: "Lt", KindLtE: "LtE",
	KindGt: "Gt", KindGtE: "GtE", KindIs: "Is", KindIsNot: "IsNot", KindIn: "In",
	KindNotIn: "NotIn",
}

// CtxKind tags the load/store/delete/param role of a Name-like node.
type CtxKind int

const (
	CtxLoad CtxKind = iota
	CtxStore
	CtxDel
	CtxParam
)

// NumKind distinguishes integer, float, and complex literals, since
// regeneration rules differ per kind (spec.md §4.4, Number).
type NumKind int

const (
	NumInt NumKind = iota
	NumFloat
	NumComplex
)

// StringPart is one piece of a possibly-concatenated string literal.
type StringPart struct {
	Prefix string // "", "u", "r", "ur", "U", "R", "Ur", "uR", "UR"
	Quote  string // one of `'` `"` `'''` `"""`
	Inner  string // the text between the quotes, as authored
}

// Matcher is implemented by pymatch; pyast only needs the ability to hold
// an opaque attached matcher per spec.md §3.
type Matcher interface {
	Match(text string) (string, error)
	Source() string
}

// Node is the single concrete representation for every AST node kind this
// module works with. Only the fields relevant to Kind are populated.
type Node struct {
	Kind Kind

	// Attached matcher (spec.md §3's "mutable attached matcher reference").
	Matcher Matcher

	// Statement nodes carry a back-reference to their enclosing module,
	// used solely for indent discovery (spec.md §3).
	ModuleNode *Node

	// Scalar identifier / literal fields
	Id         string // Name.id
	Attr       string // Attribute.attr
	Ident      string // FunctionDef.name / ClassDef.name / alias.name
	AsName     string // alias.asname
	Vararg     string // arguments.vararg
	KwargName  string // arguments.kwarg
	ModuleName string // ImportFrom.module
	ArgName    string // keyword.arg
	GlobalNames []string // Global.names

	S           string
	StringParts []StringPart
	NumLiteral  string // preserved lexeme, if any
	N           float64
	NumKind     NumKind

	Ctx   CtxKind
	Level int // ImportFrom.level
	Nl    bool

	ColOffset     int
	Comment       string
	CommentIndent int
	HasComment    bool

	// Single-child node fields
	Value        *Node
	Test         *Node
	Target       *Node
	Iter         *Node
	Left         *Node
	Right        *Node
	Op           *Node
	Operand      *Node
	Func         *Node
	Elt          *Node
	Key          *Node
	Lower        *Node
	Upper        *Node
	Step         *Node
	Slice        *Node
	ContextExpr  *Node
	OptionalVars *Node
	ArgsNode     *Node // FunctionDef/Lambda.args
	Type         *Node
	Msg          *Node
	Dest         *Node
	ExceptName   *Node
	BodyExpr     *Node // Lambda.body / IfExp.body (single-expr "body")
	OrelseExpr   *Node // IfExp.orelse (single-expr "orelse")
	StarArgs     *Node
	KwArgs       *Node

	// List fields
	Elts          []*Node
	Targets       []*Node
	Values        []*Node
	Keys          []*Node
	Body          []*Node
	Orelse        []*Node
	FinalBody     []*Node
	Handlers      []*Node
	DecoratorList []*Node
	Bases         []*Node
	ArgsList      []*Node // arguments.args / Call.args (positional)
	Defaults      []*Node
	Keywords      []*Node
	Generators    []*Node
	Ifs           []*Node
	Comparators   []*Node
	Ops           []*Node
	Names         []*Node // Import/ImportFrom.names (alias nodes)
}

// New returns a zero-valued Node of the given kind.
func New(kind Kind) *Node {
	return &Node{Kind: kind}
}
