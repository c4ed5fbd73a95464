package view

// Backend is the rendering capability every output target implements.
// Each method receives the active Context, the resolved element, and the
// already rendered output of that element's children, and returns the
// target's own node type N.
//
// Spacing and padding arrive scaled; backends never apply theme scaling
// again. No method fails: a target without a visual notion of a primitive
// still returns an inspectable node for it.
type Backend[N any] interface {
	// Containers. Children are rendered before the container is called.
	VStack(ctx *Context, e VStack, children []N) N
	HStack(ctx *Context, e HStack, children []N) N
	Wrap(ctx *Context, e Wrap, children []N) N
	ZStack(ctx *Context, e ZStack, children []N) N
	Grid(ctx *Context, e Grid, children []N) N

	// Content leaves.
	Text(ctx *Context, e Text) N
	RichText(ctx *Context, e RichText) N
	Icon(ctx *Context, e Icon) N
	Divider(ctx *Context, e Divider) N
	Space(ctx *Context, e Space) N

	// Shapes.
	Circle(ctx *Context, e Circle) N
	Arc(ctx *Context, e Arc) N
	Path(ctx *Context, e Path) N
	Capsule(ctx *Context, e Capsule) N
	Rectangle(ctx *Context, e Rectangle) N

	// Controls.
	Button(ctx *Context, e Button, content N) N
	SidebarItem(ctx *Context, e SidebarItem) N
	TextInput(ctx *Context, e TextInput) N
	TextEditor(ctx *Context, e TextEditor) N
	Slider(ctx *Context, e Slider) N
	Toggle(ctx *Context, e Toggle) N

	// Media.
	Image(ctx *Context, e Image) N
	Video(ctx *Context, e Video) N
	WebView(ctx *Context, e WebView) N

	// Wrappers around a single child.
	Container(ctx *Context, e Container, content N) N
	ScrollView(ctx *Context, e ScrollView, content N) N
	MouseArea(ctx *Context, e MouseArea, content N) N
	Tooltip(ctx *Context, e Tooltip, content N) N
	GlassCard(ctx *Context, e GlassCard, content N) N
	Section(ctx *Context, e Section, content N) N
	SpatialModifier(ctx *Context, e SpatialModifier, content N) N

	// Semantic renders a prebuilt semantic node.
	Semantic(ctx *Context, e Semantic) N
}
