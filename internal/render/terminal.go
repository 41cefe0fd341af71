package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bookcatalog/internal/theme"
)

// Terminal writes views as styled text. Colours follow the last rendered theme.
type Terminal struct {
	out   io.Writer
	lg    *lipgloss.Renderer
	title lipgloss.Style
	muted lipgloss.Style
	panel lipgloss.Style
}

func NewTerminal(out io.Writer) *Terminal {
	t := &Terminal{out: out, lg: lipgloss.NewRenderer(out)}
	t.RenderTheme(theme.Day.Settings())
	return t
}

func (t *Terminal) RenderTheme(s theme.Settings) {
	fg := lipgloss.Color(hexColor(s.Dark))
	bg := lipgloss.Color(hexColor(s.Light))
	t.title = t.lg.NewStyle().Bold(true).Foreground(fg).Background(bg)
	t.muted = t.lg.NewStyle().Faint(true).Foreground(fg)
	t.panel = t.lg.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Padding(0, 1)
}

func (t *Terminal) RenderList(v ListView) {
	if v.Empty {
		fmt.Fprintln(t.out, t.muted.Render(v.Message))
		return
	}
	for _, p := range v.Items {
		fmt.Fprintf(t.out, "%s  %s\n", t.title.Render(p.Title), t.muted.Render(p.AuthorName))
		fmt.Fprintf(t.out, "    %s\n", t.muted.Render(p.ID))
	}
	label := v.Button.Label
	if v.Button.Disabled {
		label += " [end]"
	}
	fmt.Fprintln(t.out, t.muted.Render(label))
}

func (t *Terminal) RenderDetail(d *Detail) {
	if d == nil {
		return
	}
	var b strings.Builder
	b.WriteString(t.title.Render(d.Title))
	b.WriteString("\n")
	subtitle := d.AuthorName
	if d.PublishedYear != 0 {
		subtitle = fmt.Sprintf("%s (%d)", d.AuthorName, d.PublishedYear)
	}
	b.WriteString(t.muted.Render(subtitle))
	b.WriteString("\n\n")
	b.WriteString(d.Description)
	fmt.Fprintln(t.out, t.panel.Render(b.String()))
}

// hexColor turns an "r, g, b" triplet into #rrggbb.
func hexColor(triplet string) string {
	parts := strings.Split(triplet, ",")
	if len(parts) != 3 {
		return ""
	}
	var rgb [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return ""
		}
		rgb[i] = v
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}
