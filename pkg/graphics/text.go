package graphics

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/mafeblanco565/mayrav/pkg/errors"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightLight    FontWeight = 300
	FontWeightNormal   FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightLight:
		return "light"
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemibold:
		return "semibold"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// FontStyle represents normal or italic text styles.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// String returns a human-readable representation of the font style.
func (s FontStyle) String() string {
	switch s {
	case FontStyleNormal:
		return "normal"
	case FontStyleItalic:
		return "italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color         Color
	FontSize      float64
	FontWeight    FontWeight
	FontStyle     FontStyle
	LetterSpacing float64
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text    string
	Style   TextStyle
	Lines   []TextLine
	Size    Size
	Ascent  float64
	Descent float64
	Face    font.Face
}

// FontManager resolves and caches font faces for measurement and rasterizing.
// Faces come from the bundled Go fonts; weight and style select among the
// regular, bold, italic, and bold-italic variants.
type FontManager struct {
	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	bold   bool
	italic bool
	size   float64
}

var (
	fontManagerOnce sync.Once
	fontManager     *FontManager
	fontManagerErr  error
)

// DefaultFontManager returns the process-wide font manager, creating it on
// first use. Errors are reported through the errors handler and a nil manager
// is returned, matching the graceful-degradation contract of Text rendering.
func DefaultFontManager() *FontManager {
	manager, err := DefaultFontManagerErr()
	if err != nil {
		return nil
	}
	return manager
}

// DefaultFontManagerErr returns the process-wide font manager or the error
// that prevented creating it.
func DefaultFontManagerErr() (*FontManager, error) {
	fontManagerOnce.Do(func() {
		fontManager = &FontManager{faces: make(map[faceKey]font.Face)}
		// Parse all variants up front so failures surface at first use.
		for _, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
			if _, err := opentype.Parse(ttf); err != nil {
				fe := errors.New("graphics.DefaultFontManager", errors.KindInit, err)
				fontManagerErr = fe
				errors.Report(fe)
				fontManager = nil
				return
			}
		}
	})
	return fontManager, fontManagerErr
}

// Face returns a cached face for the given style.
func (m *FontManager) Face(style TextStyle) (font.Face, error) {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	key := faceKey{
		bold:   style.FontWeight >= FontWeightSemibold,
		italic: style.FontStyle == FontStyleItalic,
		size:   size,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[key]; ok {
		return face, nil
	}

	ttf := goregular.TTF
	switch {
	case key.bold && key.italic:
		ttf = gobolditalic.TTF
	case key.bold:
		ttf = gobold.TTF
	case key.italic:
		ttf = goitalic.TTF
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, errors.New("graphics.FontManager.Face", errors.KindInit, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.New("graphics.FontManager.Face", errors.KindInit, err)
	}
	m.faces[key] = face
	return face, nil
}

// Layout measures text and produces a TextLayout.
//
// When maxWidth is positive the text wraps at word boundaries; otherwise it
// stays on a single line. maxLines limits the number of laid-out lines
// (0 = unlimited).
func (m *FontManager) Layout(text string, style TextStyle, maxWidth float64, maxLines int) (*TextLayout, error) {
	face, err := m.Face(style)
	if err != nil {
		return nil, err
	}

	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	lineHeight := ascent + descent

	var lines []TextLine
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, layoutParagraph(face, paragraph, style.LetterSpacing, maxWidth)...)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	var widest float64
	for _, line := range lines {
		if line.Width > widest {
			widest = line.Width
		}
	}

	return &TextLayout{
		Text:    text,
		Style:   style,
		Lines:   lines,
		Size:    Size{Width: widest, Height: lineHeight * float64(len(lines))},
		Ascent:  ascent,
		Descent: descent,
		Face:    face,
	}, nil
}

// LineHeight returns the advance between baselines.
func (l *TextLayout) LineHeight() float64 {
	return l.Ascent + l.Descent
}

func layoutParagraph(face font.Face, paragraph string, letterSpacing, maxWidth float64) []TextLine {
	measure := func(s string) float64 {
		w := fixedToFloat(font.MeasureString(face, s))
		if letterSpacing != 0 && len(s) > 1 {
			w += letterSpacing * float64(len([]rune(s))-1)
		}
		return w
	}

	if maxWidth <= 0 {
		return []TextLine{{Text: paragraph, Width: measure(paragraph)}}
	}

	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []TextLine{{Text: "", Width: 0}}
	}

	var lines []TextLine
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) > maxWidth {
			lines = append(lines, TextLine{Text: current, Width: measure(current)})
			current = word
			continue
		}
		current = candidate
	}
	lines = append(lines, TextLine{Text: current, Width: measure(current)})
	return lines
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
