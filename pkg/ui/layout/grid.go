package layout

import (
	"strconv"

	"github.com/odvcencio/facet/pkg/ui/semantic"
	"github.com/odvcencio/facet/pkg/ui/view"
)

// MobileBreakpoint is the viewport width below which a ResponsiveGrid uses
// its mobile column count.
const MobileBreakpoint float32 = 600

// ResponsiveGrid chunks its children into rows of a column count that
// depends on the viewport width.
type ResponsiveGrid struct {
	children []view.View
	spacing  float32
	columns  int
	mobile   int
}

func NewResponsiveGrid(children ...view.View) *ResponsiveGrid {
	return &ResponsiveGrid{children: children, spacing: 20, columns: 2, mobile: 1}
}

func (g *ResponsiveGrid) Push(v view.View) *ResponsiveGrid    { g.children = append(g.children, v); return g }
func (g *ResponsiveGrid) Spacing(v float32) *ResponsiveGrid   { g.spacing = v; return g }
func (g *ResponsiveGrid) Columns(n int) *ResponsiveGrid       { g.columns = max(n, 1); return g }
func (g *ResponsiveGrid) MobileColumns(n int) *ResponsiveGrid { g.mobile = max(n, 1); return g }

// ColumnsFor reports the column count used under ctx.
func (g *ResponsiveGrid) ColumnsFor(ctx *view.Context) int {
	if ctx.Size.Width < MobileBreakpoint {
		return g.mobile
	}
	return g.columns
}

func (g *ResponsiveGrid) Render(ctx *view.Context) view.Element {
	return view.Grid{
		Children: view.RenderViews(ctx, g.children),
		Columns:  g.ColumnsFor(ctx),
		Spacing:  ctx.Scale(g.spacing),
	}
}

func (g *ResponsiveGrid) Describe(ctx *view.Context) semantic.Node {
	return semantic.New("grid").
		WithLabel("responsive_columns: " + strconv.Itoa(g.ColumnsFor(ctx))).
		Extend(view.DescribeAll(ctx, g.children)...)
}
