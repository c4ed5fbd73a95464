package main

import (
	"github.com/odvcencio/facet/pkg/ui/atoms"
	"github.com/odvcencio/facet/pkg/ui/layout"
	"github.com/odvcencio/facet/pkg/ui/markdown"
	"github.com/odvcencio/facet/pkg/ui/modifier"
	"github.com/odvcencio/facet/pkg/ui/theme"
	"github.com/odvcencio/facet/pkg/ui/view"
)

const showcaseNotes = "# Release notes\n\n" +
	"Version **0.1** renders one description through `four` backends.\n\n" +
	"- [x] terminal\n- [x] semantic\n- [ ] spatial polish\n\n" +
	"| Backend | Output |\n|:--|:--|\n| terminal | ANSI text |\n| spatial | 3D nodes |\n\n" +
	"```go\nfmt.Println(\"hello\")\n```\n"

// showcase is the demonstration view every subcommand renders, inset by the
// device safe area. Pressable elements emit their id as the message.
func showcase() view.View {
	actions := layout.NewHStack(
		modifier.Neural(
			atoms.NewButtonLabel("Save").ID("save").Icon("check").OnPress("save"),
			"primary_action",
		),
		modifier.Documented(
			atoms.NewButtonLabel("Share").ID("share").Variant(theme.VariantOutline).OnPress("share"),
			"Copies a link to the clipboard",
		),
		modifier.Sudo(
			atoms.NewButtonLabel("Delete").ID("delete").Intent(theme.IntentDanger).OnPress("delete"),
			"Deletes the document for every collaborator",
		),
	).Spacing(12)

	form := layout.NewVStack(
		atoms.NewTextField("", "Display name", nil).ID("name"),
		atoms.NewTextField("", "Password", nil).ID("password").Secure(),
		atoms.NewToggle("Notifications", true, nil),
		atoms.NewSlider(0, 100, 40, nil),
	).Spacing(8)

	cards := layout.NewResponsiveGrid(
		layout.NewCard(layout.NewVStack(
			atoms.NewText("Renders").Headline(),
			atoms.NewText("1,204").Title2().Primary(),
		).Spacing(4)),
		layout.NewCard(layout.NewVStack(
			atoms.NewText("Hit tests").Headline(),
			atoms.NewText("318").Title2(),
		).Spacing(4)),
		modifier.PhysicalDepth(layout.NewGlassCard(
			atoms.NewImage("assets/preview.png").Width(view.Fixed(120)).Height(view.Fixed(80)).Radius(6),
		), 8),
	).Spacing(16)

	sidebar := layout.NewVStack(
		atoms.NewSidebarItem("Overview", "home", true).OnPress("nav:overview"),
		atoms.NewSidebarItem("Settings", "settings", false).OnPress("nav:settings"),
	).Width(view.Fixed(200))

	body := layout.NewVStack(
		atoms.NewText("facet").LargeTitle(),
		layout.NewSection("Actions", actions),
		layout.NewSection("Profile", form),
		layout.NewSection("Stats", cards),
		markdown.NewArticle(showcaseNotes),
	).Spacing(24).Padding(view.Uniform(24))

	return layout.NewSafeArea(layout.NewHStack(
		modifier.Billboard(sidebar, true),
		atoms.NewDivider(),
		atoms.NewScrollView(body),
	))
}
