// Package page assembles the recital pitch page.
//
// The page is a single scrollable column: header, biography, programme,
// performers, coproduction terms, and a contact footer, separated by
// animated rules. Each section fades in the first time it scrolls into
// view and stays visible from then on.
package page

import (
	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/layout"
	"github.com/mafeblanco565/mayrav/pkg/visibility"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

// App is the root widget of the page.
type App struct {
	core.StatefulBase
	Site Site
	// Controller drives the scroll position. Nil creates one internally.
	Controller *widgets.ScrollController
	// OnContact is invoked with the contact address when the footer link
	// is tapped. Nil renders the address as plain text.
	OnContact func(email string)
}

func (a App) CreateState() core.State {
	return &appState{}
}

type appState struct {
	core.StateBase
	controller *widgets.ScrollController
	observer   *visibility.ScrollObserver
}

func (s *appState) widget() App {
	return s.Element().Widget().(App)
}

func (s *appState) InitState() {
	widget := s.widget()

	s.controller = widget.Controller
	if s.controller == nil {
		s.controller = widgets.NewScrollController()
	}
	s.observer = visibility.NewScrollObserver(s.controller)
	s.OnDispose(s.observer.Dispose)
}

func (s *appState) Build(ctx core.BuildContext) core.Widget {
	widget := s.widget()
	site := widget.Site

	sections := []core.Widget{
		section(headerBlock(site)),
		sectionRule(),
		section(biographyBlock(site)),
		sectionRule(),
		section(programBlock(site)),
		sectionRule(),
		section(castBlock(site)),
		sectionRule(),
		section(coproductionBlock(site)),
		sectionRule(),
		section(footerBlock(site, widget.OnContact)),
	}

	return widgets.Root(widgets.Container{
		Color: paperColor,
		Child: visibility.Scope{
			Observer: s.observer,
			Child: widgets.ScrollView{
				Controller: s.controller,
				Padding:    layout.EdgeInsetsSymmetric(32, 64),
				Child: widgets.Column{
					CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
					Children:           sections,
				},
			},
		},
	})
}
