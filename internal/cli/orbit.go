package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lovewall/pkg/wall/layout"
	"github.com/matzehuels/lovewall/pkg/wall/orbit"
	"github.com/matzehuels/lovewall/pkg/wall/sink"
)

const (
	// defaultOrbitCards is used when neither a count nor --images is given.
	defaultOrbitCards = 30

	orbitFPS = 30

	// ambientSpeed is the auto-rotate yaw in degrees per second.
	ambientSpeed = 12.0

	// A terminal cell is treated as cellWidthPx × cellHeightPx pointer pixels.
	cellWidthPx  = 8.0
	cellHeightPx = 16.0

	orbitPerspective = 1000.0
)

var (
	styleCardFront = lipgloss.NewStyle().Foreground(colorPink)
	styleCardBack  = lipgloss.NewStyle().Foreground(colorDim)
)

// orbitCommand creates the interactive terminal wall viewer.
func (c *CLI) orbitCommand() *cobra.Command {
	var flags wallFlags

	cmd := &cobra.Command{
		Use:   "orbit [count]",
		Short: "View the wall in the terminal and drag it around",
		Long: `View the wall in the terminal and drag it around with the mouse.

Dragging rotates the wall: horizontal movement turns it, vertical movement tilts
it. While auto-rotate is on, the wall keeps spinning once you let go.

Keys: a toggles auto-rotate, r resets the view, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				flags.seed = c.Config.Wall.Seed
			}
			if len(args) == 0 && flags.images == "" {
				args = []string{fmt.Sprint(defaultOrbitCards)}
			}
			return c.runOrbit(cmd.Context(), args, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

// runOrbit plans the wall and hands it to the bubbletea program.
func (c *CLI) runOrbit(ctx context.Context, args []string, flags wallFlags) error {
	planner, err := c.newPlanner(flags)
	if err != nil {
		return err
	}
	in, err := c.wallInput(ctx, args, flags.images)
	if err != nil {
		if advise(err) {
			return nil
		}
		return err
	}
	plan, err := planner.Plan(in.count)
	if err != nil {
		return fmt.Errorf("plan wall: %w", err)
	}

	m := newOrbitModel(plan,
		orbit.WithSensitivity(c.Config.Orbit.Sensitivity),
		orbit.WithResetDuration(c.Config.Orbit.ResetDuration.Std()),
	)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

// =============================================================================
// wallView - orbit.Renderer for the terminal
// =============================================================================

// wallView plays the browser container's role: it holds the manual override
// set by the controller and runs the ambient spin.
type wallView struct {
	override   bool
	applied    orbit.Angles
	transition time.Duration
	ambient    bool
	spin       float64
}

func (v *wallView) ApplyRotation(a orbit.Angles, transition time.Duration) {
	v.override = true
	v.applied = a
	v.transition = transition
}

func (v *wallView) ClearOverride() {
	v.override = false
	v.applied = orbit.Angles{}
	v.spin = 0
}

func (v *wallView) SetAmbient(running bool) { v.ambient = running }

// advance moves the ambient spin forward by dt while it runs.
func (v *wallView) advance(dt time.Duration) {
	if v.ambient {
		v.spin += ambientSpeed * dt.Seconds()
	}
}

// angles is the on-screen rotation: the eased override plus the spin.
func (v *wallView) angles(ctrl *orbit.Controller) orbit.Angles {
	a := orbit.Angles{Y: v.spin}
	if v.override {
		d := ctrl.Displayed()
		a.X += d.X
		a.Y += d.Y
	}
	return a
}

// =============================================================================
// orbitModel - bubbletea model
// =============================================================================

type orbitKeyMap struct {
	Auto  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func (k orbitKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Auto, k.Reset, k.Quit} }

func (k orbitKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var orbitKeys = orbitKeyMap{
	Auto:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto-rotate")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset view")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type orbitTickMsg time.Time

func orbitTick() tea.Cmd {
	return tea.Tick(time.Second/orbitFPS, func(t time.Time) tea.Msg { return orbitTickMsg(t) })
}

// orbitModel is the bubbletea model for the terminal wall viewer.
type orbitModel struct {
	plan   layout.Plan
	extent float64
	ctrl   *orbit.Controller
	view   *wallView
	help   help.Model
	width  int
	height int
	last   time.Time
}

func newOrbitModel(plan layout.Plan, opts ...orbit.Option) orbitModel {
	view := &wallView{ambient: true}
	return orbitModel{
		plan:   plan,
		extent: wallExtent(plan),
		ctrl:   orbit.New(view, opts...),
		view:   view,
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

func (m orbitModel) Init() tea.Cmd {
	return orbitTick()
}

func (m orbitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, orbitKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, orbitKeys.Auto):
			m.ctrl.ToggleAutoRotate()
		case key.Matches(msg, orbitKeys.Reset):
			m.ctrl.ResetView()
		}
	case tea.MouseMsg:
		p := orbit.Point{X: float64(msg.X) * cellWidthPx, Y: float64(msg.Y) * cellHeightPx}
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.ctrl.BeginDrag(p)
			}
		case tea.MouseActionMotion:
			m.ctrl.DragTo(p)
		case tea.MouseActionRelease:
			m.ctrl.EndDrag()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case orbitTickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			dt := now.Sub(m.last)
			m.ctrl.Advance(dt)
			m.view.advance(dt)
		}
		m.last = now
		return m, orbitTick()
	}
	return m, nil
}

func (m orbitModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s %d cards · %s", iconHeart, m.plan.Len(), m.plan.Strategy)))
	b.WriteString("\n")
	b.WriteString(m.canvas(m.width, max(m.height-4, 1)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(m.help.View(orbitKeys))

	return b.String()
}

// status describes the controller state.
func (m orbitModel) status() string {
	a := m.ctrl.Angles()
	return fmt.Sprintf("%s · %s · pitch %.0f° yaw %.0f°", m.ctrl.Mode(), m.ctrl.Phase(), a.X, a.Y)
}

// canvas projects card centres onto a w×h character grid. Nearer cards win a
// cell; cards facing the viewer are drawn solid.
func (m orbitModel) canvas(w, h int) string {
	type cell struct {
		depth float64
		front bool
		set   bool
	}
	grid := make([][]cell, h)
	for i := range grid {
		grid[i] = make([]cell, w)
	}

	view := sink.ViewMatrix(m.view.angles(m.ctrl))
	rot := view.Mat3()
	// Fit the wall's extent into the grid; cells are twice as tall as wide.
	scale := math.Min(float64(w)/2, float64(h)) / (2 * m.extent)

	for _, pl := range m.plan.Placements {
		c := view.Mul4(pl.Matrix()).Mul4x1(mgl64.Vec4{0, 0, 0, 1})
		dist := orbitPerspective - c.Z()
		if dist <= 1 {
			continue
		}
		s := orbitPerspective / dist * scale
		col := int(math.Round(float64(w)/2 + c.X()*s*2))
		row := int(math.Round(float64(h)/2 + c.Y()*s))
		if row < 0 || row >= h || col < 0 || col >= w {
			continue
		}
		if g := &grid[row][col]; !g.set || c.Z() > g.depth {
			*g = cell{depth: c.Z(), front: rot.Mul3x1(pl.Normal()).Z() >= 0, set: true}
		}
	}

	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, g := range row {
			switch {
			case !g.set:
				b.WriteByte(' ')
			case g.front:
				b.WriteString(styleCardFront.Render("■"))
			default:
				b.WriteString(styleCardBack.Render("·"))
			}
		}
	}
	return b.String()
}

// wallExtent is the largest distance of a card edge from the origin.
func wallExtent(p layout.Plan) float64 {
	extent := float64(sink.CardWidth)
	for _, pl := range p.Placements {
		extent = math.Max(extent, pl.Position.Len()+sink.CardWidth/2)
	}
	return extent
}
