package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/astrosim/internal/orbit"
)

const (
	canvasWidth  = 56
	canvasHeight = 22
	graphWidth   = 36
	maxStride    = 64

	// arrowFraction is the share of the semi-major axis drawn for the
	// fastest velocity vector.
	arrowFraction = 0.35
)

type TickMsg time.Time

// OrbitModel replays a precomputed orbit. It never recomputes kinematics:
// every tick only advances an index into the frame slice.
type OrbitModel struct {
	name     string
	params   orbit.Params
	frames   []orbit.Frame
	speeds   []float64
	maxSpeed float64

	fps     int
	stride  int
	pos     int
	laps    int
	running bool

	theme  Theme
	canvas *Canvas
	proj   Projection
}

// NewOrbitModel builds a live view over frames. fps <= 0 falls back to 30.
func NewOrbitModel(name string, p orbit.Params, frames []orbit.Frame, fps int, theme string) *OrbitModel {
	if fps <= 0 {
		fps = 30
	}
	speeds := make([]float64, len(frames))
	maxSpeed := 0.0
	for i, f := range frames {
		speeds[i] = f.Speed()
		maxSpeed = math.Max(maxSpeed, speeds[i])
	}

	c := NewCanvas(canvasWidth, canvasHeight)
	return &OrbitModel{
		name:     name,
		params:   p,
		frames:   frames,
		speeds:   speeds,
		maxSpeed: maxSpeed,
		fps:      fps,
		stride:   1,
		running:  true,
		theme:    GetTheme(theme),
		canvas:   c,
		proj:     Fit(c, -p.Aphelion(), p.Perihelion(), -p.A*math.Sqrt(1-p.E*p.E), p.A*math.Sqrt(1-p.E*p.E), 2),
	}
}

// Position is the index of the frame currently shown.
func (m *OrbitModel) Position() int { return m.pos }

// Stride is the number of frames advanced per tick.
func (m *OrbitModel) Stride() int { return m.stride }

func (m *OrbitModel) Running() bool { return m.running }

func (m *OrbitModel) Theme() Theme { return m.theme }

func (m *OrbitModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *OrbitModel) Init() tea.Cmd {
	return m.tick()
}

func (m *OrbitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
		case "r":
			m.pos, m.laps = 0, 0
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "+", "=":
			m.stride = min(m.stride*2, maxStride)
		case "-", "_":
			m.stride = max(m.stride/2, 1)
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *OrbitModel) advance() {
	if len(m.frames) == 0 {
		return
	}
	m.pos += m.stride
	for m.pos >= len(m.frames) {
		m.pos -= len(m.frames)
		m.laps++
	}
}

func (m *OrbitModel) draw() {
	c := m.canvas
	c.Clear()
	if len(m.frames) == 0 {
		return
	}

	// trail: the closed ellipse through every sampled frame
	prevX, prevY := m.proj.Dot(m.frames[len(m.frames)-1].Pos.X, m.frames[len(m.frames)-1].Pos.Y)
	for _, f := range m.frames {
		x, y := m.proj.Dot(f.Pos.X, f.Pos.Y)
		c.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}

	sx, sy := m.proj.Dot(0, 0)
	c.FillDisc(sx, sy, 1)

	f := m.frames[m.pos]
	px, py := m.proj.Dot(f.Pos.X, f.Pos.Y)
	c.FillDisc(px, py, 2)

	if m.maxSpeed > 0 {
		k := arrowFraction * m.params.A / m.maxSpeed
		ax, ay := m.proj.Dot(f.Pos.X+f.Vel.X*k, f.Pos.Y+f.Vel.Y*k)
		c.DrawLine(px, py, ax, ay)
	}
}

// recentSpeeds returns up to n speeds ending at the current frame.
func (m *OrbitModel) recentSpeeds(n int) []float64 {
	if len(m.speeds) == 0 {
		return nil
	}
	n = min(n, len(m.speeds))
	out := make([]float64, 0, n)
	for i := m.pos - n + 1; i <= m.pos; i++ {
		out = append(out, m.speeds[(i+len(m.speeds))%len(m.speeds)])
	}
	return out
}

func (m *OrbitModel) View() string {
	m.draw()
	st := newStyles(m.theme)
	canvasView := st.panel.Render(st.canvas.Render(m.canvas.String()))

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.name)) + "\n")
	if m.running {
		s.WriteString(st.value.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	if len(m.frames) > 0 {
		f := m.frames[m.pos]
		row := func(label, value string) {
			s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
		}
		row("t", fmt.Sprintf("%.4f yr", f.T))
		row("θ", fmt.Sprintf("%.2f°", f.Theta*180/math.Pi))
		row("r", fmt.Sprintf("%.4f AU", f.R))
		row("v", fmt.Sprintf("%.3f AU/yr", f.Speed()))
		row("frame", fmt.Sprintf("%d/%d", m.pos+1, len(m.frames)))
		row("orbits", fmt.Sprintf("%d", m.laps))
		row("speed", fmt.Sprintf("x%d", m.stride))
		s.WriteString(ProgressBar(float64(m.pos)/float64(len(m.frames)), graphWidth-4) + "\n")
		s.WriteString(st.graph.Render(Sparkline(m.speeds, graphWidth-4)) + "\n")

		if hist := m.recentSpeeds(graphWidth * 2); len(hist) > 1 {
			chart := asciigraph.Plot(hist, asciigraph.Height(6), asciigraph.Width(graphWidth), asciigraph.Caption("speed (AU/yr)"))
			s.WriteString("\n" + st.graph.Render(chart) + "\n")
		}
	}

	s.WriteString(st.help.Render("\nSPC:Pause R:Restart T:Theme\n+/-:Speed  Q:Quit"))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
}

// Run starts the live view on the terminal and blocks until the user quits.
func Run(m *OrbitModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
