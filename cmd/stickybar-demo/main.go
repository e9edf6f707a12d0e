package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stickybar/pkg/affix"
	"stickybar/pkg/html"
	"stickybar/pkg/js"
	"stickybar/pkg/measure"
	"stickybar/pkg/render"
)

// demoPage is used when no page file is given on the command line.
const demoPage = `
	<div id="header" style="height: 200px"></div>
	<div id="container" style="height: 4000px">
		<aside id="sidebar" style="width: 250px">
			<p style="height: 600px">sidebar</p>
		</aside>
		<div style="height: 3400px">content</div>
	</div>
	<div id="footer" style="height: 400px"></div>
	<script>
		new StickySidebar("#sidebar", {
			containerSelector: "#container",
			topSpacing: 20,
			bottomSpacing: 20,
		});
	</script>`

func main() {
	src := demoPage
	if len(os.Args) > 1 {
		content, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		src = string(content)
	}

	doc, err := html.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	m := measure.NewPageMeasurer(doc, 1024, 768)
	engine := js.New(m, affix.Capabilities{Transform: true, Transform3D: true})
	if err := engine.Execute(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Script error: %v\n", err)
		os.Exit(1)
	}
	if len(engine.Sidebars()) == 0 {
		fmt.Fprintln(os.Stderr, "Page constructed no sticky sidebars")
		os.Exit(1)
	}
	sidebar := engine.Sidebars()[0]

	a := app.New()
	w := a.NewWindow("stickybar demo")
	w.Resize(fyne.NewSize(560, 760))

	renderer := render.NewRenderer(520, 680)
	frame := func() *canvas.Image {
		f := render.Capture(sidebar, m, 20, 20, m.DocumentHeight())
		img := canvas.NewImageFromImage(renderer.Render(f))
		img.FillMode = canvas.ImageFillOriginal
		return img
	}

	canvasImg := frame()
	status := widget.NewLabel("mode: static")

	maxScroll := m.DocumentHeight() - 768
	if maxScroll < 0 {
		maxScroll = 0
	}
	slider := widget.NewSlider(0, maxScroll)
	slider.OnChanged = func(v float64) {
		m.SetScroll(v, 0)
		sidebar.HandleScroll()

		f := render.Capture(sidebar, m, 20, 20, m.DocumentHeight())
		canvasImg.Image = renderer.Render(f)
		canvasImg.Refresh()
		status.SetText(fmt.Sprintf("scroll: %.0f  mode: %s  translateY: %.0f",
			v, sidebar.Mode(), sidebar.TranslateY()))
	}

	bottom := container.NewVBox(slider, status)
	w.SetContent(container.NewBorder(nil, bottom, nil, nil, canvasImg))
	w.ShowAndRun()
}
