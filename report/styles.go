package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"io"
	"keyaudit/keyblob"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")
)

type styles struct {
	color   bool
	header  lipgloss.Style
	strong  lipgloss.Style
	weak    lipgloss.Style
	medium  lipgloss.Style
	dim     lipgloss.Style
	summary lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		color:   color,
		header:  r.NewStyle().Bold(true),
		strong:  r.NewStyle().Foreground(colorGreen),
		weak:    r.NewStyle().Foreground(colorRed),
		medium:  r.NewStyle().Foreground(colorYellow),
		dim:     r.NewStyle().Foreground(colorDim),
		summary: r.NewStyle().Foreground(colorDim).Italic(true),
	}
}

func (s styles) paint(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

// forRecord picks the row colour from the key type and size.
func (s styles) forRecord(rec keyblob.KeyRecord) lipgloss.Style {
	if rec.Failed {
		return s.weak
	}
	switch keyblob.AlgorithmOf(rec.KeyType) {
	case keyblob.AlgDSS:
		return s.weak
	case keyblob.AlgRSA:
		return s.forRSABits(rec.ModulusBits)
	case keyblob.AlgECDSA, keyblob.AlgEd25519:
		return s.strong
	default:
		return s.dim
	}
}

func (s styles) forRSABits(bits int) lipgloss.Style {
	switch {
	case bits < 2048:
		return s.weak
	case bits < 3072:
		return s.medium
	default:
		return s.strong
	}
}
