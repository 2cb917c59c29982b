/*
Package contentdbg implements helpers to debug content trees and page grids.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package contentdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/pagecore/page"
	"github.com/npillmayer/pagecore/sequence"
	tp "github.com/xlab/treeprint"
)

// Dump returns an indented tree representation of the content tree at root.
func Dump(root *content.Node) string {
	if root == nil {
		return "<empty>"
	}
	p := tp.New()
	dump(p.AddBranch(label(root)), root)
	return p.String()
}

func dump(p tp.Tree, n *content.Node) {
	for _, ch := range n.ChildNodes() {
		if ch.TreeNode().ChildCount() == 0 {
			p.AddNode(label(ch))
			continue
		}
		dump(p.AddBranch(label(ch)), ch)
	}
}

func label(n *content.Node) string {
	b := n.Bounds
	return fmt.Sprintf("%s @(%v,%v) %v×%v", n, b.X, b.Y, b.Width, b.Height)
}

// DumpPage returns a tree of the cells of the grid of a logical page, listing
// the flows visible in every cell.
func DumpPage(lp *page.Logical, grid page.Grid) string {
	root := tp.New()
	p := root.AddBranch(fmt.Sprintf("%s on %s", lp, grid))
	grid.Cells(func(row, col int) bool {
		key, _ := grid.PhysicalKey(lp.Key, row, col)
		cell := p.AddBranch(key.String())
		clip := grid.Cell(row, col)
		for _, f := range lp.Flows {
			if f.Root == nil {
				continue
			}
			visible := 0
			_ = content.Walk(f.Root, func(n *content.Node) error {
				if n.Bounds.Intersects(clip) {
					visible++
				}
				return nil
			}, nil)
			cell.AddNode(fmt.Sprintf("%s: %d nodes", f.Name, visible))
		}
		return true
	})
	return root.String()
}

// DumpSequence returns the classifications and widths of a sequence list,
// one element per line.
func DumpSequence(l *sequence.List) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < l.Size(); i++ {
		e, n := l.Element(i), l.Node(i)
		if e.Classification() == sequence.ClassEnd {
			depth--
		}
		fmt.Fprintf(&b, "%s%-7s %v [%v…%v]\n", strings.Repeat("  ", depth),
			e.Classification(), n, e.MinimumWidth(n), e.MaximumWidth(n))
		if e.Classification() == sequence.ClassStart {
			depth++
		}
	}
	return b.String()
}

// --- GraphViz --------------------------------------------------------------

type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	N    *content.Node
	Name string
}

type edge struct {
	N1, N2 node
}

// ToGraphViz outputs a diagram of a content tree in GraphViz (DOT) format.
func ToGraphViz(root *content.Node, w io.Writer) error {
	head := template.Must(template.New("content").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err := head.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*content.Node]string)
	name := func(n *content.Node) string {
		if s, ok := dict[n]; ok {
			return s
		}
		s := fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = s
		return s
	}
	err := content.Walk(root, func(n *content.Node) error {
		if err := gparams.NodeTmpl.Execute(w, node{n, name(n)}); err != nil {
			return err
		}
		if parent := n.ParentNode(); parent != nil && n != root {
			return gparams.EdgeTmpl.Execute(w, edge{node{parent, name(parent)}, node{n, name(n)}})
		}
		return nil
	}, nil)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a content node and a testing.T, it
// will create a GraphViz image of the tree under root and write it to a file
// in the current folder, choosing a unique file name. The image is in SVG
// format.
func Dotty(root *content.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "content.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing content digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

func shortText(n *content.Node) string {
	s := n.String()
	if len(s) > 16 {
		s = s[:16] + "..."
	}
	s = strings.ReplaceAll(s, "\n", `\n`)
	return fmt.Sprintf("%q", s)
}

// --- Templates -------------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  node [fontname = "{{ .Fontname }}" fontsize=14] ;
  edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const nodeTmpl = `{{ if eq .N.Kind.String "text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
