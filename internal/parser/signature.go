package parser

import (
	"go/ast"
	"go/types"
	"strings"
)

// Signature renders the parameter types of a function as (T1, T2).
// Parameter names are not part of it, so renaming a parameter does not
// change which interface method a struct method matches.
func Signature(fnType *ast.FuncType) string {
	return "(" + strings.Join(fieldTypes(fnType.Params), ", ") + ")"
}

// methodKey identifies a method for interface satisfaction: name, parameters and results
func methodKey(name string, fnType *ast.FuncType) string {
	return name + Signature(fnType) + "(" + strings.Join(fieldTypes(fnType.Results), ", ") + ")"
}

func fieldTypes(fields *ast.FieldList) []string {
	if fields == nil {
		return nil
	}
	var out []string
	for _, field := range fields.List {
		typ := types.ExprString(field.Type)
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			out = append(out, typ)
		}
	}
	return out
}

// receiverName returns the type name of a method receiver
func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.ParenExpr:
		return receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	case *ast.Ident:
		return t.Name
	default:
		return ""
	}
}

// embeddedName returns the name of an embedded interface declared in the same package
func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	default:
		// qualified names and type constraints belong to other packages
		return ""
	}
}
