package page

import (
	"fmt"

	"github.com/mafeblanco565/mayrav/pkg/core"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

// section centers a block in the text column and fades it in on first
// scroll into view.
func section(child core.Widget) core.Widget {
	return widgets.Reveal{
		Child: widgets.Centered(widgets.SizedBox{Width: contentWidth, Child: child}),
	}
}

// sectionRule is the animated divider between sections. It grows from the
// center once half of it is visible.
func sectionRule() core.Widget {
	return widgets.Centered(widgets.SizedBox{
		Width: contentWidth,
		Child: widgets.RevealRule{
			Height:    sectionGap,
			Thickness: 1,
			Color:     ruleColor,
		},
	})
}

func heading(text string) core.Widget {
	return widgets.Column{
		CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
		Children: []core.Widget{
			widgets.Text{Content: text, Style: headingStyle},
			widgets.VSpace(blockGap),
		},
	}
}

func headerBlock(site Site) core.Widget {
	children := []core.Widget{}
	if site.Logo != nil {
		children = append(children,
			widgets.Image{Source: site.Logo, Height: 72},
			widgets.VSpace(blockGap),
		)
	}
	children = append(children,
		widgets.Text{Content: site.Name, Style: titleStyle},
		widgets.VSpace(lineGap),
		widgets.Text{Content: site.Tagline, Style: taglineStyle},
	)
	return widgets.Column{
		CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		Children:           children,
	}
}

func biographyBlock(site Site) core.Widget {
	children := []core.Widget{heading("Biography")}
	if site.Portrait != nil {
		children = append(children,
			widgets.Centered(widgets.Image{Source: site.Portrait, Width: 280}),
			widgets.VSpace(blockGap),
		)
	}
	for i, paragraph := range site.Biography {
		if i > 0 {
			children = append(children, widgets.VSpace(blockGap))
		}
		children = append(children, widgets.Text{Content: paragraph, Style: bodyStyle})
	}
	return widgets.Column{
		CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
		Children:           children,
	}
}

func programBlock(site Site) core.Widget {
	children := []core.Widget{heading("Programme")}
	for i, item := range site.Program {
		if i > 0 {
			children = append(children, widgets.VSpace(blockGap))
		}
		children = append(children, programItemBlock(item))
	}
	return widgets.Column{
		CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
		Children:           children,
	}
}

// programItemBlock renders a single program entry. The composer always
// appears; title, details, and the piece listing are skipped when empty.
func programItemBlock(item ProgramItem) core.Widget {
	children := []core.Widget{
		widgets.Text{Content: item.Composer, Style: composerStyle},
	}
	if item.Title != "" {
		children = append(children,
			widgets.VSpace(lineGap/2),
			widgets.Text{Content: item.Title, Style: workStyle},
		)
	}
	for _, detail := range item.Details {
		children = append(children,
			widgets.VSpace(lineGap/2),
			widgets.Text{Content: detail, Style: detailStyle},
		)
	}
	for i, piece := range item.Pieces {
		children = append(children,
			widgets.VSpace(lineGap/2),
			widgets.PaddingOnly(24, 0, 0, 0,
				widgets.Text{
					Content: fmt.Sprintf("%d. %s", i+1, piece),
					Style:   bodyStyle,
				}),
		)
	}
	return widgets.Column{
		CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
		Children:           children,
	}
}

func castBlock(site Site) core.Widget {
	nameStyle := bodyStyle
	nameStyle.FontWeight = composerStyle.FontWeight

	children := []core.Widget{heading("Performers")}
	for i, member := range site.Cast {
		if i > 0 {
			children = append(children, widgets.VSpace(lineGap))
		}
		children = append(children, widgets.Row{
			Children: []core.Widget{
				widgets.Text{Content: member.Name, Style: nameStyle},
				widgets.HSpace(12),
				widgets.Text{Content: member.Role, Style: detailStyle},
			},
		})
	}
	return widgets.Column{
		CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
		Children:           children,
	}
}

func coproductionBlock(site Site) core.Widget {
	children := []core.Widget{heading("Coproduction")}
	for i, paragraph := range site.Coproduction {
		if i > 0 {
			children = append(children, widgets.VSpace(lineGap))
		}
		children = append(children, widgets.Text{Content: paragraph, Style: bodyStyle})
	}
	return widgets.Column{
		CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
		Children:           children,
	}
}

func footerBlock(site Site, onContact func(email string)) core.Widget {
	contact := core.Widget(widgets.Text{Content: site.Contact, Style: linkStyle})
	if onContact != nil {
		email := site.Contact
		contact = widgets.Tap(func() { onContact(email) }, contact)
	}
	return widgets.Column{
		CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		Children: []core.Widget{
			widgets.Text{Content: site.FooterNote, Style: footerStyle},
			widgets.VSpace(lineGap),
			contact,
		},
	}
}
