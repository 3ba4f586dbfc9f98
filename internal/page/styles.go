package page

import "github.com/mafeblanco565/mayrav/pkg/graphics"

// Palette.
var (
	paperColor  = graphics.RGB(0xFA, 0xF7, 0xF2)
	inkColor    = graphics.RGB(0x1C, 0x1B, 0x18)
	mutedColor  = graphics.RGB(0x6E, 0x68, 0x5E)
	accentColor = graphics.RGB(0x9A, 0x6A, 0x1F)
	ruleColor   = graphics.RGB(0xC9, 0xBE, 0xAD)
)

// Text styles, roughly a four-step type scale over the body size.
var (
	titleStyle = graphics.TextStyle{
		Color:         inkColor,
		FontSize:      40,
		FontWeight:    graphics.FontWeightBold,
		LetterSpacing: 1,
	}
	taglineStyle = graphics.TextStyle{
		Color:     accentColor,
		FontSize:  20,
		FontStyle: graphics.FontStyleItalic,
	}
	headingStyle = graphics.TextStyle{
		Color:         inkColor,
		FontSize:      26,
		FontWeight:    graphics.FontWeightSemibold,
		LetterSpacing: 0.5,
	}
	composerStyle = graphics.TextStyle{
		Color:      inkColor,
		FontSize:   19,
		FontWeight: graphics.FontWeightSemibold,
	}
	workStyle = graphics.TextStyle{
		Color:     inkColor,
		FontSize:  17,
		FontStyle: graphics.FontStyleItalic,
	}
	bodyStyle = graphics.TextStyle{
		Color:    inkColor,
		FontSize: 16,
	}
	detailStyle = graphics.TextStyle{
		Color:    mutedColor,
		FontSize: 14,
	}
	footerStyle = graphics.TextStyle{
		Color:    mutedColor,
		FontSize: 14,
	}
	linkStyle = graphics.TextStyle{
		Color:      accentColor,
		FontSize:   16,
		FontWeight: graphics.FontWeightMedium,
	}
)

const (
	// contentWidth is the measure of the centered text column.
	contentWidth = 640

	sectionGap = 56
	blockGap   = 20
	lineGap    = 8
)
