// Package gobind lowers typed Go syntax into the semantic representation
// the analysis core works on. It is one possible front end: the core itself
// never looks at go/ast and accepts any driver able to build sem values.
package gobind

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/semlint/caseful/internal/sem"
)

// Engine lowers the switch statements of one or more files sharing a
// types.Info. Configure the ignore list before the first LowerFile call.
type Engine struct {
	info         *types.Info
	ignoredEnums map[Reference]struct{}
	params       map[types.Object]struct{}
}

// NewEngine is [Engine] constructor.
func NewEngine(info *types.Info) *Engine {
	return &Engine{
		info:         info,
		ignoredEnums: make(map[Reference]struct{}),
		params:       make(map[types.Object]struct{}),
	}
}

// IgnoreEnumType excludes switches over the referenced named type from
// lowering.
func (e *Engine) IgnoreEnumType(ref Reference) {
	e.ignoredEnums[ref] = struct{}{}
}

// LowerFile lowers every tagged switch statement of the file, nested ones
// included, in source order. Untagged switches carry boolean clause
// conditions rather than matched values and are not coverage material.
func (e *Engine) LowerFile(file *ast.File) []*sem.SwitchConstruct {
	e.scrapParams(file)

	var out []*sem.SwitchConstruct
	ast.Inspect(file, func(n ast.Node) bool {
		sw, ok := n.(*ast.SwitchStmt)
		if !ok {
			return true
		}

		if c := e.lowerSwitch(sw); c != nil {
			out = append(out, c)
		}

		return true
	})

	return out
}

// scrapParams records the parameter objects of every function declaration
// and literal, so identifier lowering can tell parameters from locals.
func (e *Engine) scrapParams(file *ast.File) {
	ast.Inspect(file, func(n ast.Node) bool {
		var ft *ast.FuncType
		switch v := n.(type) {
		case *ast.FuncDecl:
			ft = v.Type
		case *ast.FuncLit:
			ft = v.Type
		default:
			return true
		}

		if ft.Params == nil {
			return true
		}
		for _, field := range ft.Params.List {
			for _, name := range field.Names {
				if obj := e.info.Defs[name]; obj != nil {
					e.params[obj] = struct{}{}
				}
			}
		}

		return true
	})
}

func (e *Engine) lowerSwitch(sw *ast.SwitchStmt) *sem.SwitchConstruct {
	if sw.Tag == nil {
		return nil
	}
	if sw.Body == nil || len(sw.Body.List) == 0 {
		// Does not describe a real multi-way branch; nothing to check.
		return nil
	}

	if t := e.info.TypeOf(sw.Tag); t != nil && e.ignored(t) {
		return nil
	}

	out := &sem.SwitchConstruct{
		Discriminant: e.lowerExpr(sw.Tag),
		Pos:          sw.Pos(),
		End:          sw.End(),
	}

	for _, stmt := range sw.Body.List {
		cc, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}

		if cc.List == nil {
			out.Clauses = append(out.Clauses, &sem.DefaultClause{Pos: cc.Case})
			continue
		}

		// Multi-expression labels flatten into one clause per value.
		for _, x := range cc.List {
			out.Clauses = append(out.Clauses, &sem.ValueClause{
				Value: e.lowerExpr(x),
				Pos:   cc.Case,
			})
		}
	}

	if len(out.Clauses) == 0 {
		return nil
	}

	return out
}

func (e *Engine) ignored(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	pkg := named.Obj().Pkg()
	if pkg == nil {
		return false
	}

	_, ok = e.ignoredEnums[Reference{Package: pkg.Path(), Type: named.Obj().Name()}]
	return ok
}

// lowerExpr maps one Go expression to its sem variant. Everything outside
// the recognized shapes becomes Opaque, never an error: the core treats
// Opaque as "insufficient information" and abstains.
func (e *Engine) lowerExpr(x ast.Expr) sem.Expr {
	switch v := x.(type) {
	case *ast.ParenExpr:
		return e.lowerExpr(v.X)

	case *ast.Ident:
		return e.lowerIdent(v)

	case *ast.SelectorExpr:
		return e.lowerSelector(v)

	case *ast.CallExpr:
		return e.lowerCall(v)

	default:
		return &sem.Opaque{Pos: x.Pos()}
	}
}

func (e *Engine) lowerIdent(v *ast.Ident) sem.Expr {
	obj := e.info.ObjectOf(v)

	switch o := obj.(type) {
	case *types.Const:
		if o.Pkg() == nil {
			// Universe constants: true and false.
			switch o.Name() {
			case "true":
				return &sem.Literal{Kind: sem.LitTrue, Pos: v.Pos()}
			case "false":
				return &sem.Literal{Kind: sem.LitFalse, Pos: v.Pos()}
			default:
				return &sem.Opaque{Pos: v.Pos()}
			}
		}

		return e.constRef("", o, v)

	case *types.Nil:
		return &sem.Literal{Kind: sem.LitNull, Pos: v.Pos()}

	case *types.Var:
		if o.IsField() {
			return &sem.FieldRef{
				Recv:     namedTypeName(o.Type()),
				Name:     o.Name(),
				DeclType: HandleFor(o.Type()),
				Pos:      v.Pos(),
			}
		}

		if _, isParam := e.params[o]; isParam {
			return &sem.ParamRef{
				Name:     o.Name(),
				Mode:     sem.ParamModeValue,
				DeclType: HandleFor(o.Type()),
				Pos:      v.Pos(),
			}
		}

		return &sem.LocalRef{
			Name:     o.Name(),
			DeclType: HandleFor(o.Type()),
			Pos:      v.Pos(),
		}

	default:
		return &sem.Opaque{Pos: v.Pos()}
	}
}

func (e *Engine) lowerSelector(v *ast.SelectorExpr) sem.Expr {
	obj := e.info.ObjectOf(v.Sel)

	switch o := obj.(type) {
	case *types.Const:
		return e.constRef(recvName(e.info, v), o, v.Sel)

	case *types.Var:
		if o.IsField() {
			return &sem.FieldRef{
				Recv:     recvName(e.info, v),
				Name:     o.Name(),
				DeclType: HandleFor(o.Type()),
				Pos:      v.Sel.Pos(),
			}
		}

		// Package-level variable accessed through its package.
		return &sem.LocalRef{
			Name:     o.Name(),
			DeclType: HandleFor(o.Type()),
			Pos:      v.Sel.Pos(),
		}

	default:
		return &sem.Opaque{Pos: v.Pos()}
	}
}

func (e *Engine) lowerCall(v *ast.CallExpr) sem.Expr {
	if tv, ok := e.info.Types[v.Fun]; ok && tv.IsType() {
		if len(v.Args) != 1 {
			return &sem.Opaque{Pos: v.Pos()}
		}

		return &sem.Conversion{
			To:  HandleFor(tv.Type),
			X:   e.lowerExpr(v.Args[0]),
			Pos: v.Pos(),
		}
	}

	fn, ok := typeutil.Callee(e.info, v).(*types.Func)
	if !ok {
		// Closures and computed callees carry no identifier to resolve.
		return &sem.Opaque{Pos: v.Pos()}
	}

	var ret sem.TypeHandle
	sig := fn.Signature()
	if sig.Results().Len() == 1 {
		ret = HandleFor(sig.Results().At(0).Type())
	}

	var recv string
	if r := sig.Recv(); r != nil {
		recv = namedTypeName(r.Type())
	}

	return &sem.Invocation{
		Recv:       recv,
		Name:       fn.Name(),
		ReturnType: ret,
		Pos:        v.Pos(),
	}
}

// constRef lowers a reference to a declared constant. Members of an
// enumeration type surface as const field references of the enumeration,
// which is the shape the case-value collector recognizes.
func (e *Engine) constRef(recv string, o *types.Const, at ast.Node) sem.Expr {
	if recv == "" {
		recv = namedTypeName(o.Type())
	}

	return &sem.FieldRef{
		Recv:     recv,
		Name:     o.Name(),
		Const:    true,
		DeclType: HandleFor(o.Type()),
		Pos:      at.Pos(),
	}
}

func namedTypeName(t types.Type) string {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return ""
	}
	return named.Obj().Name()
}

func recvName(info *types.Info, v *ast.SelectorExpr) string {
	tv, ok := info.Types[v.X]
	if !ok {
		return ""
	}
	return namedTypeName(tv.Type)
}
