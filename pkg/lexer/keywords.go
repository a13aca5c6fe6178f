package lexer

// Keyword token kinds, one per reserved English word.
const (
	KwBegin TokenKind = iota + keywordBase
	KwProgram
	KwEnd
	KwNote
	KwSet
	KwLet
	KwDefine
	KwAlways
	KwChange
	KwForget
	KwCheck
	KwExists
	KwAdd
	KwSubtract
	KwMultiply
	KwDivide
	KwFind
	KwRaise
	KwPower
	KwSquare
	KwRoot
	KwAbsolute
	KwValue
	KwRound
	KwCeiling
	KwFloor
	KwLogarithm
	KwSine
	KwCosine
	KwTangent
	KwProduct
	KwRemainder
	KwJoin
	KwLength
	KwUppercase
	KwLowercase
	KwTrim
	KwWhitespace
	KwStarts
	KwEnds
	KwReplace
	KwSplit
	KwPosition
	KwTake
	KwCharacters
	KwReverse
	KwRepeat
	KwContains
	KwIs
	KwEqual
	KwNot
	KwGreater
	KwLess
	KwThan
	KwOr
	KwAnd
	KwEmpty
	KwNumber
	KwText
	KwList
	KwMap
	KwBig
	KwType
	KwConvert
	KwTurn
	KwInto
	KwIf
	KwThen
	KwOtherwise
	KwWhen
	KwDo
	KwBy
	KwDefault
	KwTimes
	KwWhile
	KwUntil
	KwFor
	KwEach
	KwIn
	KwLoop
	KwFrom
	KwTo
	KwStepping
	KwStop
	KwSkip
	KwFunction
	KwCalled
	KwThat
	KwTakes
	KwGive
	KwBack
	KwCall
	KwWith
	KwInline
	KwGives
	KwContaining
	KwCreate
	KwInsert
	KwAt
	KwRemove
	KwGet
	KwItem
	KwSort
	KwAscending
	KwDescending
	KwFilter
	KwWhere
	KwReduce
	KwUsing
	KwCopy
	KwFlatten
	KwKey
	KwAsk
	KwUser
	KwRead
	KwSay
	KwPrint
	KwShow
	KwFile
	KwLine
	KwWrite
	KwAppend
	KwDelete
	KwAttempt
	KwIt
	KwFails
	KwMessage
	KwAfter
	KwError
	KwSaying
	KwGlobal
	KwBring
	KwUse
	KwModule
	KwNamed
	KwExport
	KwTrue
	KwFalse
	KwNothing
	KwNegative
	KwAs
	KwThe
	KwA
	KwAn
	KwOf
	KwStore
	KwCurrent
	KwResult
	KwDecimal
	KwPlaces
	KwBase
	KwMy
	KwBlueprint
	KwHas
	KwInitialize
	KwNew
	KwOn
	KwExtends
	KwParent
	KwAbstract
	KwThis
	KwMust
	KwBe
	KwImplemented
	KwContract
	KwRequires
	KwPrivate
	KwWindow
	KwTitle
	KwWidth
	KwHeight
	KwBackground
	KwLabel
	KwButton
	KwInput
	KwPlaceholder
	KwPlace
	KwRow
	KwColumn

	keywordEnd
)

// keywords maps reserved words to their token kinds. Matching is case-sensitive.
var keywords = map[string]TokenKind{
	"begin":       KwBegin,
	"program":     KwProgram,
	"end":         KwEnd,
	"note":        KwNote,
	"set":         KwSet,
	"let":         KwLet,
	"define":      KwDefine,
	"always":      KwAlways,
	"change":      KwChange,
	"forget":      KwForget,
	"check":       KwCheck,
	"exists":      KwExists,
	"add":         KwAdd,
	"subtract":    KwSubtract,
	"multiply":    KwMultiply,
	"divide":      KwDivide,
	"find":        KwFind,
	"raise":       KwRaise,
	"power":       KwPower,
	"square":      KwSquare,
	"root":        KwRoot,
	"absolute":    KwAbsolute,
	"value":       KwValue,
	"round":       KwRound,
	"ceiling":     KwCeiling,
	"floor":       KwFloor,
	"logarithm":   KwLogarithm,
	"sine":        KwSine,
	"cosine":      KwCosine,
	"tangent":     KwTangent,
	"product":     KwProduct,
	"remainder":   KwRemainder,
	"join":        KwJoin,
	"length":      KwLength,
	"uppercase":   KwUppercase,
	"lowercase":   KwLowercase,
	"trim":        KwTrim,
	"whitespace":  KwWhitespace,
	"starts":      KwStarts,
	"ends":        KwEnds,
	"replace":     KwReplace,
	"split":       KwSplit,
	"position":    KwPosition,
	"take":        KwTake,
	"characters":  KwCharacters,
	"reverse":     KwReverse,
	"repeat":      KwRepeat,
	"contains":    KwContains,
	"is":          KwIs,
	"equal":       KwEqual,
	"not":         KwNot,
	"greater":     KwGreater,
	"less":        KwLess,
	"than":        KwThan,
	"or":          KwOr,
	"and":         KwAnd,
	"empty":       KwEmpty,
	"number":      KwNumber,
	"text":        KwText,
	"list":        KwList,
	"map":         KwMap,
	"big":         KwBig,
	"type":        KwType,
	"convert":     KwConvert,
	"turn":        KwTurn,
	"into":        KwInto,
	"if":          KwIf,
	"then":        KwThen,
	"otherwise":   KwOtherwise,
	"when":        KwWhen,
	"do":          KwDo,
	"by":          KwBy,
	"default":     KwDefault,
	"times":       KwTimes,
	"while":       KwWhile,
	"until":       KwUntil,
	"for":         KwFor,
	"each":        KwEach,
	"in":          KwIn,
	"loop":        KwLoop,
	"from":        KwFrom,
	"to":          KwTo,
	"stepping":    KwStepping,
	"stop":        KwStop,
	"skip":        KwSkip,
	"function":    KwFunction,
	"called":      KwCalled,
	"that":        KwThat,
	"takes":       KwTakes,
	"give":        KwGive,
	"back":        KwBack,
	"call":        KwCall,
	"with":        KwWith,
	"inline":      KwInline,
	"gives":       KwGives,
	"containing":  KwContaining,
	"create":      KwCreate,
	"insert":      KwInsert,
	"at":          KwAt,
	"remove":      KwRemove,
	"get":         KwGet,
	"item":        KwItem,
	"sort":        KwSort,
	"ascending":   KwAscending,
	"descending":  KwDescending,
	"filter":      KwFilter,
	"where":       KwWhere,
	"reduce":      KwReduce,
	"using":       KwUsing,
	"copy":        KwCopy,
	"flatten":     KwFlatten,
	"key":         KwKey,
	"ask":         KwAsk,
	"user":        KwUser,
	"read":        KwRead,
	"say":         KwSay,
	"print":       KwPrint,
	"show":        KwShow,
	"file":        KwFile,
	"line":        KwLine,
	"write":       KwWrite,
	"append":      KwAppend,
	"delete":      KwDelete,
	"attempt":     KwAttempt,
	"it":          KwIt,
	"fails":       KwFails,
	"message":     KwMessage,
	"after":       KwAfter,
	"error":       KwError,
	"saying":      KwSaying,
	"global":      KwGlobal,
	"bring":       KwBring,
	"use":         KwUse,
	"module":      KwModule,
	"named":       KwNamed,
	"export":      KwExport,
	"true":        KwTrue,
	"false":       KwFalse,
	"nothing":     KwNothing,
	"negative":    KwNegative,
	"as":          KwAs,
	"the":         KwThe,
	"a":           KwA,
	"an":          KwAn,
	"of":          KwOf,
	"store":       KwStore,
	"current":     KwCurrent,
	"result":      KwResult,
	"decimal":     KwDecimal,
	"places":      KwPlaces,
	"base":        KwBase,
	"my":          KwMy,
	"blueprint":   KwBlueprint,
	"has":         KwHas,
	"initialize":  KwInitialize,
	"new":         KwNew,
	"on":          KwOn,
	"extends":     KwExtends,
	"parent":      KwParent,
	"abstract":    KwAbstract,
	"this":        KwThis,
	"must":        KwMust,
	"be":          KwBe,
	"implemented": KwImplemented,
	"contract":    KwContract,
	"requires":    KwRequires,
	"private":     KwPrivate,
	"window":      KwWindow,
	"title":       KwTitle,
	"width":       KwWidth,
	"height":      KwHeight,
	"background":  KwBackground,
	"label":       KwLabel,
	"button":      KwButton,
	"input":       KwInput,
	"placeholder": KwPlaceholder,
	"place":       KwPlace,
	"row":         KwRow,
	"column":      KwColumn,
}
