package runtime

import (
	"math"
	"strings"
	"time"

	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// builtinRecord returns the built-in function registered under name, or
// nil if name is not a recognized built-in. Built-ins are consulted by
// CallFunction only after the user-registered function table misses (spec
// §4.2: "Unknown names fall through to a built-in dispatcher").
func builtinRecord(name string) *FunctionRecord {
	rec, ok := builtinTable[name]
	return safeRecord(rec, ok)
}

func safeRecord(rec *FunctionRecord, ok bool) *FunctionRecord {
	if !ok {
		return nil
	}
	return rec
}

var builtinTable = map[string]*FunctionRecord{
	"abs": {
		Name: "abs", MinArity: 1, MaxArity: 1,
		Description: "absolute value of a number",
		Fn: func(e *Env, args []value.Value, n int) value.Value {
			x, ok := asNumber(args[0])
			if !ok {
				e.SetError(typeErr("abs"))
				return value.Null
			}
			return value.Number(math.Abs(x))
		},
	},
	"sqrt": {
		Name: "sqrt", MinArity: 1, MaxArity: 1,
		Description: "square root of a number",
		Fn: func(e *Env, args []value.Value, n int) value.Value {
			x, ok := asNumber(args[0])
			if !ok {
				e.SetError(typeErr("sqrt"))
				return value.Null
			}
			if x < 0 {
				e.SetError(domainErr("sqrt of negative number"))
				return value.Null
			}
			return value.Number(math.Sqrt(x))
		},
	},
	"ln": {
		Name: "ln", MinArity: 1, MaxArity: 1,
		Description: "natural logarithm of a number",
		Fn: func(e *Env, args []value.Value, n int) value.Value {
			x, ok := asNumber(args[0])
			if !ok {
				e.SetError(typeErr("ln"))
				return value.Null
			}
			if x <= 0 {
				e.SetError(domainErr("ln of non-positive number"))
				return value.Null
			}
			return value.Number(math.Log(x))
		},
	},
	"pow": {
		Name: "pow", MinArity: 2, MaxArity: 2,
		Description: "raise a number to a power",
		Fn: func(e *Env, args []value.Value, n int) value.Value {
			base, ok1 := asNumber(args[0])
			exp, ok2 := asNumber(args[1])
			if !ok1 || !ok2 {
				e.SetError(typeErr("pow"))
				return value.Null
			}
			return value.Number(math.Pow(base, exp))
		},
	},
	"strlen": {
		Name: "strlen", MinArity: 1, MaxArity: 1,
		Description: "length of a string",
		Fn: func(e *Env, args []value.Value, n int) value.Value {
			if args[0].Kind() != value.KindString {
				e.SetError(typeErr("strlen"))
				return value.Null
			}
			return value.Number(float64(len(args[0].AsString())))
		},
	},
	"substring": {
		Name: "substring", MinArity: 2, MaxArity: 3,
		Description: "substring of a string starting at an offset with an optional length",
		Fn: func(e *Env, args []value.Value, n int) value.Value {
			if args[0].Kind() != value.KindString {
				e.SetError(typeErr("substring"))
				return value.Null
			}
			s := args[0].AsString()
			start, ok := asNumber(args[1])
			if !ok {
				e.SetError(typeErr("substring"))
				return value.Null
			}
			startIdx := int(start)
			if startIdx < 0 || startIdx > len(s) {
				e.SetError(boundsErr(startIdx, len(s)))
				return value.Null
			}
			end := len(s)
			if n == 3 {
				length, ok := asNumber(args[2])
				if !ok {
					e.SetError(typeErr("substring"))
					return value.Null
				}
				if length < 0 {
					e.SetError(boundsErr(int(length), len(s)))
					return value.Null
				}
				end = startIdx + int(length)
				if end > len(s) {
					end = len(s)
				}
			}
			return value.String(s[startIdx:end])
		},
	},
	"mean": {
		Name: "mean", MinArity: 1, MaxArity: VarArgs,
		Description: "arithmetic mean of its numeric arguments",
		Fn: func(e *Env, args []value.Value, n int) value.Value {
			sum := 0.0
			for _, a := range args {
				x, ok := asNumber(a)
				if !ok {
					e.SetError(typeErr("mean"))
					return value.Null
				}
				sum += x
			}
			return value.Number(sum / float64(n))
		},
	},
	"now": {
		Name: "now", MinArity: 0, MaxArity: 0,
		Description: "current Unix timestamp in seconds",
		Fn: func(e *Env, args []value.Value, n int) value.Value {
			return value.Number(float64(time.Now().Unix()))
		},
	},
	"upper": {
		Name: "upper", MinArity: 1, MaxArity: 1,
		Description: "uppercase a string",
		Fn: func(e *Env, args []value.Value, n int) value.Value {
			if args[0].Kind() != value.KindString {
				e.SetError(typeErr("upper"))
				return value.Null
			}
			return value.String(strings.ToUpper(args[0].AsString()))
		},
	},
}

func asNumber(v value.Value) (float64, bool) {
	if v.Kind() != value.KindNumber {
		return 0, false
	}
	return v.AsNumber(), true
}
