package ast

import (
	"fmt"
	"io"
)

// Printer pretty-prints a parsed Program as an indented tree, one node per
// line, each nested one level deeper than its parent. It is used by the
// `parse` and `resolve` CLI subcommands (see internal/maincmd) for AST
// debugging, mirroring the debug-dump affordance of a typical compiler CLI.
//
// Printer walks the tree with Walk/Visitor rather than its own recursive
// descent: a printVisitor tracks the current depth and prints one line per
// node it is asked to visit, handing back a deeper copy of itself so Walk's
// own recursion produces the indentation.
type Printer struct {
	Output io.Writer

	// Depths, if non-nil, is consulted to annotate IdentExpr/ThisExpr/
	// SuperExpr/AssignExpr nodes with their resolved scope depth (see
	// lang/resolver). Nil means "print the bare AST", used by the `parse`
	// subcommand; non-nil is used by `resolve`.
	Depths map[ExprID]int
}

// Print writes one line per statement (and nested expression/statement) to
// p.Output.
func (p *Printer) Print(prog *Program) error {
	var err error
	Walk(printVisitor{p: p, depth: 0, err: &err}, prog)
	return err
}

// printVisitor is the Visitor that drives Print. Each level of descent gets
// its own copy with depth+1, so indentation falls out of Walk's own
// recursion instead of a hand-rolled printStmt/printExpr pair.
type printVisitor struct {
	p     *Printer
	depth int
	err   *error
}

func (pv printVisitor) Visit(n Node) Visitor {
	if *pv.err != nil {
		return nil
	}
	// Program itself is not a printable node; descend at the same depth so
	// its top-level statements start at depth 0.
	if _, ok := n.(*Program); ok {
		return pv
	}
	if _, err := fmt.Fprintf(pv.p.Output, "%*s%s\n", pv.depth*2, "", pv.p.describe(n)); err != nil {
		*pv.err = err
		return nil
	}
	return printVisitor{p: pv.p, depth: pv.depth + 1, err: pv.err}
}

func (p *Printer) depthSuffix(id ExprID) string {
	if p.Depths == nil {
		return ""
	}
	if d, ok := p.Depths[id]; ok {
		return fmt.Sprintf(" @%d", d)
	}
	return " @global"
}

// describe renders n's own line of text, excluding its children (Walk
// handles descending into those).
func (p *Printer) describe(n Node) string {
	switch n := n.(type) {
	case *ExprStmt:
		return "ExprStmt"
	case *PrintStmt:
		return "PrintStmt"
	case *VarStmt:
		return fmt.Sprintf("VarStmt %s", n.Name.Ident)
	case *BlockStmt:
		return "BlockStmt"
	case *IfStmt:
		return "IfStmt"
	case *WhileStmt:
		return "WhileStmt"
	case *FunStmt:
		return fmt.Sprintf("FunStmt %s(%d params)", n.Name.Ident, len(n.Params))
	case *ReturnStmt:
		return "ReturnStmt"
	case *ClassStmt:
		return fmt.Sprintf("ClassStmt %s", n.Name.Ident)

	case *LiteralExpr:
		return fmt.Sprintf("LiteralExpr %s", n.Val.Lexeme)
	case *IdentExpr:
		return fmt.Sprintf("IdentExpr %s%s", n.Name, p.depthSuffix(n.ID()))
	case *ThisExpr:
		return fmt.Sprintf("ThisExpr%s", p.depthSuffix(n.ID()))
	case *SuperExpr:
		return fmt.Sprintf("SuperExpr .%s%s", n.Method, p.depthSuffix(n.ID()))
	case *UnaryExpr:
		return fmt.Sprintf("UnaryExpr %s", n.Op)
	case *BinaryExpr:
		return fmt.Sprintf("BinaryExpr %s", n.Op)
	case *LogicalExpr:
		return fmt.Sprintf("LogicalExpr %s", n.Op)
	case *GroupingExpr:
		return "GroupingExpr"
	case *AssignExpr:
		return fmt.Sprintf("AssignExpr %s%s", n.Name.Name, p.depthSuffix(n.ID()))
	case *CallExpr:
		return fmt.Sprintf("CallExpr (%d args)", len(n.Args))
	case *GetExpr:
		return fmt.Sprintf("GetExpr .%s", n.Name)
	case *SetExpr:
		return fmt.Sprintf("SetExpr .%s", n.Name)

	default:
		return fmt.Sprintf("<unknown node %T>", n)
	}
}
