package pymatch

import "github.com/gnolang/pyfmt/internal/pyast"

// partsFactory builds the flat template for a node kind whose matcher is
// the generic DefaultSourceMatcher; node kinds with bespoke matching logic
// (BoolOp, If, Num, Str, Tuple, TryFinally, With) are constructed directly
// in newMatcherForNode instead (spec.md §4.4).
type partsFactory func() []Placeholder

func getAddExpectedParts() []Placeholder      { return []Placeholder{NewText(`\+`, "+")} }
func getBitAndExpectedParts() []Placeholder   { return []Placeholder{NewText(`&`, "&")} }
func getBitOrExpectedParts() []Placeholder    { return []Placeholder{NewText(`\|`, "|")} }
func getBitXorExpectedParts() []Placeholder   { return []Placeholder{NewText(`\^`, "^")} }
func getDivExpectedParts() []Placeholder      { return []Placeholder{NewText(`/`, "/")} }
func getFloorDivExpectedParts() []Placeholder { return []Placeholder{NewText(`//`, "//")} }
func getModExpectedParts() []Placeholder      { return []Placeholder{NewText(`%`, "%")} }
func getMultExpectedParts() []Placeholder     { return []Placeholder{NewText(`\*`, "*")} }
func getPowExpectedParts() []Placeholder      { return []Placeholder{NewText(`\*\*`, "**")} }
func getSubExpectedParts() []Placeholder      { return []Placeholder{NewText(`\-`, "-")} }
func getLShiftExpectedParts() []Placeholder   { return []Placeholder{NewText(`<<`, "<<")} }
func getRShiftExpectedParts() []Placeholder   { return []Placeholder{NewText(`>>`, ">>")} }

func getAndExpectedParts() []Placeholder   { return []Placeholder{NewText(`and`, "and")} }
func getOrExpectedParts() []Placeholder    { return []Placeholder{NewText(`or`, "or")} }
func getNotExpectedParts() []Placeholder   { return []Placeholder{NewText(`not`, "not")} }
func getUAddExpectedParts() []Placeholder  { return []Placeholder{NewText(`\+`, "+")} }
func getUSubExpectedParts() []Placeholder  { return []Placeholder{NewText(`-`, "-")} }
func getInvertExpectedParts() []Placeholder { return []Placeholder{NewText(`~`, "~")} }

func getEqExpectedParts() []Placeholder    { return []Placeholder{NewText(`==`, "==")} }
func getNotEqExpectedParts() []Placeholder { return []Placeholder{NewText(`!=`, "!=")} }
func getLtExpectedParts() []Placeholder    { return []Placeholder{NewText(`<`, "<")} }
func getLtEExpectedParts() []Placeholder   { return []Placeholder{NewText(`<=`, "<=")} }
func getGtExpectedParts() []Placeholder    { return []Placeholder{NewText(`>`, ">")} }
func getGtEExpectedParts() []Placeholder   { return []Placeholder{NewText(`>=`, ">=")} }
func getIsExpectedParts() []Placeholder    { return []Placeholder{NewText(`is`, "is")} }
func getIsNotExpectedParts() []Placeholder { return []Placeholder{NewText(`is *not`, "is not")} }
func getInExpectedParts() []Placeholder    { return []Placeholder{NewText(`in`, "in")} }
func getNotInExpectedParts() []Placeholder { return []Placeholder{NewText(`not *in`, "not in")} }

func getBreakExpectedParts() []Placeholder {
	return []Placeholder{NewText(` *break *\n`, "break\n")}
}
func getContinueExpectedParts() []Placeholder {
	return []Placeholder{NewText(` *continue\n`, "continue\n")}
}
func getPassExpectedParts() []Placeholder {
	return []Placeholder{NewText(`[ \t]*pass\n`, "pass\n")}
}

func getAliasExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("name"),
		NewField("asname", NewText(` *as *`, " as ")),
	}
}

func getArgumentsExpectedParts() []Placeholder {
	return []Placeholder{
		NewArgsDefaultsPlaceholder(NewText(`\s*,\s*`, ", "), NewText(`\s*=\s*`, "=")),
		NewField("vararg", NewText(`\s*,?\s*\*\s*`, ", *")),
		NewField("kwarg", NewText(`\s*,?\s*\*\*\s*`, ", **")),
	}
}

func getAssertExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(` *assert *`, "assert "),
		NewField("test"),
		NewField("msg", NewText(`, *`, ", ")),
		NewText(` *\n`, "\n"),
	}
}

func getAssignExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`[ \t]*`, ""),
		NewSeparatedListField("targets", NewText(`\s*=\s*`, ", ")),
		NewText(`[ \t]*=[ \t]*`, " = "),
		NewField("value"),
		NewText(`\n`, "\n"),
	}
}

func getAttributeExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("value"),
		NewText(`\s*\.\s*`, "."),
		NewField("attr"),
	}
}

func getAugAssignExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(` *`, ""),
		NewField("target"),
		NewText(` *`, " "),
		NewField("op"),
		NewText(`= *`, "= "),
		NewField("value"),
		NewText(`\n`, "\n"),
	}
}

func getBinOpExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("left"),
		NewText(`\s*`, " "),
		NewField("op"),
		NewText(`\s*`, " "),
		NewField("right"),
	}
}

func getCallExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("func"),
		NewText(`\(\s*`, "("),
		NewArgsKeywordsPlaceholder(NewText(`\s*,\s*`, ", "), NewText(``, "")),
		NewField("kwargs", NewText(`\s*,?\s*\*\*`, ", **")),
		NewText(`\s*,?\s*\)`, ")"),
	}
}

func getClassDefExpectedParts() []Placeholder {
	return []Placeholder{
		NewListField("decorator_list", WithBefore(NewText(`[ \t]*@`, "@")), WithAfter(NewText(`\n`, "\n"))),
		NewText(`[ \t]*class[ \t]*`, "class "),
		NewField("name"),
		NewText(`\(?\s*`, "("),
		NewSeparatedListField("bases", NewText(`\s*,\s*`, ", ")),
		NewText(`\s*,?\s*\)?:\n`, "):\n"),
		NewBodyPlaceholder("body"),
	}
}

func getCompareExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("left"),
		NewText(`\s*`, " "),
		NewOpsComparatorsPlaceholder(NewText(`\s*`, " "), NewText(`\s*`, " ")),
	}
}

func getComprehensionExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`\s*for\s*`, "for "),
		NewField("target"),
		NewText(`\s*in\s*`, " in "),
		NewField("iter"),
		NewListField("ifs", WithBefore(NewText(`\s*if\s*`, " if "))),
	}
}

func getDeleteExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(` *del *`, "del "),
		NewListField("targets"),
		NewText(`\n`, "\n"),
	}
}

func getDictExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`\s*{\s*`, "{"),
		NewKeysValuesPlaceholder(NewText(`\s*,\s*`, ", "), NewText(`\s*:\s*`, ": ")),
		NewText(`\s*,?\s*}`, "}"),
	}
}

func getDictCompExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`\{\s*`, "{"),
		NewField("key"),
		NewText(`\s*:\s*`, ": "),
		NewField("value"),
		NewText(` *`, " "),
		NewListField("generators"),
		NewText(`\s*\}`, "}"),
	}
}

func getExceptHandlerExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`[ \t]*except:?[ \t]*`, "except "),
		NewField("type"),
		NewField("name", NewText(` *as *| *, *`, " as ")),
		NewText(`[ \t]*:?[ \t]*\n`, ":\n"),
		NewBodyPlaceholder("body"),
	}
}

func getExprExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(` *`, ""),
		NewField("value"),
		NewText(` *\n`, "\n"),
	}
}

func getForExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`[ \t]*for[ \t]*`, "for "),
		NewField("target"),
		NewText(`[ \t]*in[ \t]*`, " in "),
		NewField("iter"),
		NewText(`:\n`, ":\n"),
		NewBodyPlaceholder("body"),
		NewBodyPlaceholder("orelse", WithPrefix(NewText(` *else:\n`, "else:\n"))),
	}
}

func getFunctionDefExpectedParts() []Placeholder {
	return []Placeholder{
		NewBodyPlaceholder("decorator_list", WithBefore(NewText(`[ \t]*@`, "@")), WithAfter(NewText(`\n`, "\n"))),
		NewText(`[ \t]*def `, "def "),
		NewField("name"),
		NewText(`\(\s*`, "("),
		NewField("args"),
		NewText(`\s*,?\s*\):\n?`, "):\n"),
		NewBodyPlaceholder("body"),
	}
}

func getGeneratorExpExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("elt"),
		NewText(`\s*`, " "),
		NewListField("generators"),
	}
}

func getGlobalExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(` *global *`, "global "),
		NewSeparatedListField("names", NewText(`\s*,\s*`, ", ")),
		NewText(` *\n`, "\n"),
	}
}

func getIfExpExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("body"),
		NewText(`\s*if\s*`, " if "),
		NewField("test"),
		NewText(`\s*else\s*`, " else "),
		NewField("orelse"),
	}
}

func getImportExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(` *import `, "import "),
		NewSeparatedListField("names", NewText(`[ \t]*,[ \t]`, ", ")),
		NewText(`\n`, "\n"),
	}
}

func getImportFromExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`[ \t]*from `, "from "),
		NewField("module"),
		NewText(` import `, " import "),
		NewSeparatedListField("names", NewText(`[ \t]*,[ \t]`, ", ")),
		NewText(`\n`, "\n"),
	}
}

func getIndexExpectedParts() []Placeholder { return []Placeholder{NewField("value")} }

func getKeywordExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("arg"),
		NewText(`\s*=\s*`, "="),
		NewField("value"),
	}
}

func getLambdaExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`lambda\s*`, "lambda "),
		NewField("args"),
		NewText(`\s*:\s*`, ": "),
		NewField("body"),
	}
}

func getListExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`\[\s*`, "["),
		NewSeparatedListField("elts", NewText(`\s*,\s*`, ", ")),
		NewText(`\s*,?\s*\]`, "]"),
	}
}

func getListCompExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`\[\s*`, "["),
		NewField("elt"),
		NewText(` *`, " "),
		NewListField("generators"),
		NewText(`\s*\]`, "]"),
	}
}

func getModuleExpectedParts() []Placeholder {
	return []Placeholder{NewBodyPlaceholder("body")}
}

func getNameExpectedParts() []Placeholder { return []Placeholder{NewField("id")} }

func getPrintExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(` *print *`, "print "),
		NewField("dest", NewText(`>>`, ">>")),
		NewListField("values", WithBefore(NewText(`\s*,?\s*`, ", "))),
		NewText(` *,? *\n`, "\n"),
	}
}

func getRaiseExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`[ \t]*raise[ \t]*`, "raise "),
		NewField("type"),
		NewText(`\n`, "\n"),
	}
}

func getReturnExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`[ \t]*return[ \t]*`, "return "),
		NewField("value"),
		NewText(`\n`, "\n"),
	}
}

func getSetExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`\{\s*`, "{"),
		NewSeparatedListField("elts", NewText(`\s*,\s*`, ", ")),
		NewText(`\s*\}`, "}"),
	}
}

func getSetCompExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`\{\s*`, "{"),
		NewField("elt"),
		NewText(` *`, " "),
		NewListField("generators"),
		NewText(`\s*\}`, "}"),
	}
}

func getSliceExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("lower"),
		NewText(`\s*:?\s*`, ":"),
		NewField("upper"),
		NewText(`\s*:?\s*`, ":"),
		NewField("step"),
	}
}

func getSubscriptExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("value"),
		NewText(`\s*\[\s*`, "["),
		NewField("slice"),
		NewText(`\s*\]`, "]"),
	}
}

func getSyntaxFreeLineExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("full_line"),
		NewText(`\n`, "\n"),
	}
}

func getTryExceptExpectedParts() []Placeholder {
	body := NewBodyPlaceholder("body")
	body.MatchAfter = true
	return []Placeholder{
		NewText(`[ \t]*try:[ \t]*\n`, "try:\n"),
		body,
		NewListField("handlers"),
		NewBodyPlaceholder("orelse", WithPrefix(NewText(`[ \t]*else:\n`, "else:\n"))),
	}
}

func getUnaryOpExpectedParts() []Placeholder {
	return []Placeholder{
		NewField("op"),
		NewText(` *`, " "),
		NewField("operand"),
	}
}

func getWhileExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`[ \t]*while[ \t]*`, "while "),
		NewField("test"),
		NewText(`[ \t]*:[ \t]*\n`, ":\n"),
		NewBodyPlaceholder("body"),
	}
}

func getYieldExpectedParts() []Placeholder {
	return []Placeholder{
		NewText(`[ \t]*yield[ \t]*`, "yield "),
		NewField("value"),
	}
}

// flatPartsFactories maps a node kind to its flat-template factory; every
// other kind is either a bespoke matcher (handled in newMatcherForNode) or
// absent (an author error at match time).
var flatPartsFactories = map[pyast.Kind]partsFactory{
	pyast.KindAdd:           getAddExpectedParts,
	pyast.KindAlias:         getAliasExpectedParts,
	pyast.KindAnd:           getAndExpectedParts,
	pyast.KindArguments:     getArgumentsExpectedParts,
	pyast.KindAssert:        getAssertExpectedParts,
	pyast.KindAssign:        getAssignExpectedParts,
	pyast.KindAttribute:     getAttributeExpectedParts,
	pyast.KindAugAssign:     getAugAssignExpectedParts,
	pyast.KindBinOp:         getBinOpExpectedParts,
	pyast.KindBitAnd:        getBitAndExpectedParts,
	pyast.KindBitOr:         getBitOrExpectedParts,
	pyast.KindBitXor:        getBitXorExpectedParts,
	pyast.KindBreak:         getBreakExpectedParts,
	pyast.KindCall:          getCallExpectedParts,
	pyast.KindClassDef:      getClassDefExpectedParts,
	pyast.KindCompare:       getCompareExpectedParts,
	pyast.KindComprehension: getComprehensionExpectedParts,
	pyast.KindContinue:      getContinueExpectedParts,
	pyast.KindDelete:        getDeleteExpectedParts,
	pyast.KindDict:          getDictExpectedParts,
	pyast.KindDictComp:      getDictCompExpectedParts,
	pyast.KindDiv:           getDivExpectedParts,
	pyast.KindEq:            getEqExpectedParts,
	pyast.KindExceptHandler: getExceptHandlerExpectedParts,
	pyast.KindExpr:          getExprExpectedParts,
	pyast.KindFloorDiv:      getFloorDivExpectedParts,
	pyast.KindFor:           getForExpectedParts,
	pyast.KindFunctionDef:   getFunctionDefExpectedParts,
	pyast.KindGeneratorExp:  getGeneratorExpExpectedParts,
	pyast.KindGlobal:        getGlobalExpectedParts,
	pyast.KindGt:            getGtExpectedParts,
	pyast.KindGtE:           getGtEExpectedParts,
	pyast.KindIfExp:         getIfExpExpectedParts,
	pyast.KindImport:        getImportExpectedParts,
	pyast.KindImportFrom:    getImportFromExpectedParts,
	pyast.KindIn:            getInExpectedParts,
	pyast.KindIndex:         getIndexExpectedParts,
	pyast.KindInvert:        getInvertExpectedParts,
	pyast.KindIs:            getIsExpectedParts,
	pyast.KindIsNot:         getIsNotExpectedParts,
	pyast.KindKeyword:       getKeywordExpectedParts,
	pyast.KindLambda:        getLambdaExpectedParts,
	pyast.KindList:          getListExpectedParts,
	pyast.KindListComp:      getListCompExpectedParts,
	pyast.KindLShift:        getLShiftExpectedParts,
	pyast.KindLt:            getLtExpectedParts,
	pyast.KindLtE:           getLtEExpectedParts,
	pyast.KindMod:           getModExpectedParts,
	pyast.KindModule:        getModuleExpectedParts,
	pyast.KindMult:          getMultExpectedParts,
	pyast.KindName:          getNameExpectedParts,
	pyast.KindNot:           getNotExpectedParts,
	pyast.KindNotEq:         getNotEqExpectedParts,
	pyast.KindNotIn:         getNotInExpectedParts,
	pyast.KindOr:            getOrExpectedParts,
	pyast.KindPass:          getPassExpectedParts,
	pyast.KindPow:           getPowExpectedParts,
	pyast.KindPrint:         getPrintExpectedParts,
	pyast.KindRaise:         getRaiseExpectedParts,
	pyast.KindReturn:        getReturnExpectedParts,
	pyast.KindRShift:        getRShiftExpectedParts,
	pyast.KindSet:           getSetExpectedParts,
	pyast.KindSetComp:       getSetCompExpectedParts,
	pyast.KindSlice:         getSliceExpectedParts,
	pyast.KindSub:           getSubExpectedParts,
	pyast.KindSubscript:     getSubscriptExpectedParts,
	pyast.KindSyntaxFreeLine: getSyntaxFreeLineExpectedParts,
	pyast.KindTryExcept:     getTryExceptExpectedParts,
	pyast.KindUAdd:          getUAddExpectedParts,
	pyast.KindUnaryOp:       getUnaryOpExpectedParts,
	pyast.KindUSub:          getUSubExpectedParts,
	pyast.KindWhile:         getWhileExpectedParts,
	pyast.KindYield:         getYieldExpectedParts,
}

// newMatcherForNode is the single dispatch point from a node's Kind to its
// constructed SourceMatcher: the bespoke matchers first, then the generic
// flat-template engine, mirroring source_match.py's _matchers table plus
// its isinstance-keyed special cases (spec.md §3's "every node kind has
// exactly one matcher implementation").
func newMatcherForNode(node *pyast.Node, startingParens []*TextPlaceholder) (SourceMatcher, error) {
	switch node.Kind {
	case pyast.KindBoolOp:
		return NewBoolOpSourceMatcher(node, startingParens), nil
	case pyast.KindIf:
		return NewIfSourceMatcher(node, startingParens), nil
	case pyast.KindNum:
		return NewNumSourceMatcher(node, startingParens), nil
	case pyast.KindStr:
		return NewStrSourceMatcher(node, startingParens), nil
	case pyast.KindTuple:
		return NewTupleSourceMatcher(node, startingParens)
	case pyast.KindTryFinally:
		return NewTryFinallySourceMatcher(node, startingParens)
	case pyast.KindWith:
		return NewWithSourceMatcher(node, startingParens), nil
	}

	factory, ok := flatPartsFactories[node.Kind]
	if !ok {
		return nil, invalidTemplatef("no matcher registered for node kind %s", node.Kind)
	}
	return NewDefaultSourceMatcher(node, factory(), startingParens)
}
