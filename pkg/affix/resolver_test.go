package affix

import (
	"testing"

	"stickybar/pkg/measure"
)

var resolverSnap = measure.Snapshot{
	ViewportTop:     300,
	ViewportHeight:  800,
	ViewportLeft:    10,
	ContainerTop:    100,
	ContainerHeight: 2000,
	SidebarHeight:   400,
	SidebarWidth:    250,
	SidebarLeft:     60,
	TopSpacing:      20,
	BottomSpacing:   15,
}

var innerFields = []string{"position", "top", "left", "bottom", "width", "transform"}
var outerFields = []string{"height", "position"}

func checkComplete(t *testing.T, sets StyleSets) {
	t.Helper()
	for _, f := range innerFields {
		if _, ok := sets.Inner.Get(f); !ok {
			t.Errorf("inner style missing %q", f)
		}
	}
	for _, f := range outerFields {
		if _, ok := sets.Outer.Get(f); !ok {
			t.Errorf("outer style missing %q", f)
		}
	}
}

func TestResolveAlwaysComplete(t *testing.T) {
	capsVariants := []Capabilities{
		{},
		{Transform: true},
		{Transform: true, Transform3D: true},
	}
	modes := []Mode{Static, ViewportTop, ViewportBottom, ContainerBottom, ViewportUnbottom}

	for _, caps := range capsVariants {
		for _, mode := range modes {
			checkComplete(t, Resolve(mode, resolverSnap, 120, caps))
		}
	}
}

func TestResolveStatic(t *testing.T) {
	sets := Resolve(Static, resolverSnap, 0, Capabilities{Transform: true})

	if v, _ := sets.Inner.Get("position"); v != "relative" {
		t.Errorf("inner position = %q", v)
	}
	for _, f := range []string{"top", "left", "bottom", "width"} {
		if v, _ := sets.Inner.Get(f); v != "" {
			t.Errorf("inner %s = %q, want cleared", f, v)
		}
	}
	if v, _ := sets.Inner.Get("transform"); v != "translate(0, 0)" {
		t.Errorf("inner transform = %q", v)
	}
	if v, _ := sets.Outer.Get("height"); v != "" {
		t.Errorf("outer height = %q, want cleared", v)
	}
	if v, _ := sets.Outer.Get("position"); v != "" {
		t.Errorf("outer position = %q, want cleared", v)
	}
}

func TestResolveViewportTop(t *testing.T) {
	sets := Resolve(ViewportTop, resolverSnap, 220, Capabilities{})

	inner := sets.Inner
	if v, _ := inner.Get("position"); v != "fixed" {
		t.Errorf("position = %q", v)
	}
	if v, _ := inner.Get("top"); v != "20px" {
		t.Errorf("top = %q", v)
	}
	// left is viewport-relative: sidebarLeft - viewportLeft.
	if v, _ := inner.Get("left"); v != "50px" {
		t.Errorf("left = %q", v)
	}
	if v, _ := inner.Get("width"); v != "250px" {
		t.Errorf("width = %q", v)
	}
	if v, _ := sets.Outer.Get("height"); v != "400px" {
		t.Errorf("outer height = %q", v)
	}
	if v, _ := sets.Outer.Get("position"); v != "relative" {
		t.Errorf("outer position = %q", v)
	}
}

func TestResolveViewportBottom(t *testing.T) {
	sets := Resolve(ViewportBottom, resolverSnap, 0, Capabilities{})

	inner := sets.Inner
	if v, _ := inner.Get("position"); v != "fixed" {
		t.Errorf("position = %q", v)
	}
	if v, _ := inner.Get("top"); v != "auto" {
		t.Errorf("top = %q", v)
	}
	if v, _ := inner.Get("left"); v != "60px" {
		t.Errorf("left = %q", v)
	}
	if v, _ := inner.Get("bottom"); v != "15px" {
		t.Errorf("bottom = %q", v)
	}
	if v, _ := inner.Get("width"); v != "250px" {
		t.Errorf("width = %q", v)
	}
}

func TestResolveContainerBottomTransforms(t *testing.T) {
	// translate3d preferred over translate over absolute positioning.
	sets := Resolve(ContainerBottom, resolverSnap, 120, Capabilities{Transform: true, Transform3D: true})
	if v, _ := sets.Inner.Get("transform"); v != "translate3d(0, 120px, 0)" {
		t.Errorf("3d transform = %q", v)
	}
	if v, _ := sets.Inner.Get("position"); v != "relative" {
		t.Errorf("position = %q, transform mode keeps flow position", v)
	}

	sets = Resolve(ContainerBottom, resolverSnap, 120, Capabilities{Transform: true})
	if v, _ := sets.Inner.Get("transform"); v != "translate(0, 120px)" {
		t.Errorf("2d transform = %q", v)
	}

	sets = Resolve(ViewportUnbottom, resolverSnap, 120, Capabilities{})
	if v, _ := sets.Inner.Get("position"); v != "absolute" {
		t.Errorf("fallback position = %q", v)
	}
	// top is container-relative: containerTop + translateY.
	if v, _ := sets.Inner.Get("top"); v != "220px" {
		t.Errorf("fallback top = %q", v)
	}
	if v, _ := sets.Inner.Get("transform"); v != "" {
		t.Errorf("fallback transform = %q, want empty", v)
	}
}
