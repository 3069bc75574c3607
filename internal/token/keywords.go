package token

import "maps"

var keywords = map[string]Kind{
	// управление потоком
	"if":        KwIf,
	"else":      KwElse,
	"elif":      KwElif,
	"match":     KwMatch,
	"case":      KwCase,
	"default":   KwDefault,
	"switch":    KwSwitch,
	"for":       KwFor,
	"while":     KwWhile,
	"loop":      KwLoop,
	"until":     KwUntil,
	"spread":    KwSpread,
	"generate":  KwGenerate,
	"combine":   KwCombine,
	"enumerate": KwEnumerate,
	"filter":    KwFilter,
	"flatten":   KwFlatten,
	"repeat":    KwRepeat,
	"transform": KwTransform,
	"transpose": KwTranspose,
	"break":     KwBreak,
	"continue":  KwContinue,
	"return":    KwReturn,
	"yield":     KwYield,
	"exit":      KwExit,
	"cancel":    KwCancel,
	"defer":     KwDefer,

	"try":     KwTry,
	"catch":   KwCatch,
	"finally": KwFinally,
	"throw":   KwThrow,

	"async":     KwAsync,
	"await":     KwAwait,
	"coroutine": KwCoroutine,

	// объявления
	"class":     KwClass,
	"interface": KwInterface,
	"enum":      KwEnum,
	"cont":      KwContainer,
	"container": KwContainer,
	"fn":        KwFunction,
	"func":      KwFunction,
	"function":  KwFunction,
	"proc":      KwProcedure,
	"procedure": KwProcedure,
	"var":       KwVariable,
	"let":       KwVariable,
	"variable":  KwVariable,
	"const":     KwConstant,
	"constant":  KwConstant,
	"struct":    KwStructure,
	"structure": KwStructure,
	"import":    KwImport,
	"export":    KwExport,
	"from":      KwFrom,
	"include":   KwInclude,
	"new":       KwNew,

	// типы
	"type":       KwType,
	"auto":       KwAuto,
	"alias":      KwAlias,
	"as":         KwAs,
	"is":         KwIs,
	"extends":    KwExtends,
	"implements": KwImplements,
	"in":         KwIn,
	"of":         KwOf,
	"where":      KwWhere,
	"when":       KwWhen,
	"contains":   KwContains,
	"with":       KwWith,

	"true":      KwTrue,
	"false":     KwFalse,
	"nil":       KwNil,
	"none":      KwNone,
	"undefined": KwUndefined,
	"this":      KwThis,
	"super":     KwSuper,
	"root":      KwRoot,
	"parent":    KwParent,
	"here":      KwHere,

	"public":    KwPublic,
	"private":   KwPrivate,
	"protected": KwProtected,
	"internal":  KwInternal,
	"external":  KwExternal,
	"global":    KwGlobal,
	"local":     KwLocal,
	"static":    KwStatic,
	"virtual":   KwVirtual,
	"abstract":  KwAbstract,
	"override":  KwOverride,
	"final":     KwFinal,

	"meta":      KwMeta,
	"reflect":   KwReflect,
	"attribute": KwAttribute,

	"and": KwAnd,
	"or":  KwOr,
	"not": KwNot,

	// единицы, зарезервированные как слова
	"deg": UnitDegree,
	"rad": UnitRadian,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Keywords returns a copy of the keyword table.
func Keywords() map[string]Kind {
	return maps.Clone(keywords)
}
