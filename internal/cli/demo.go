package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/deadfoxygrandpa/phybas-graviz/geometry"
	"github.com/deadfoxygrandpa/phybas-graviz/ingest"
	"github.com/deadfoxygrandpa/phybas-graviz/interact"
	"github.com/deadfoxygrandpa/phybas-graviz/models"
	"github.com/deadfoxygrandpa/phybas-graviz/physics"
	"github.com/deadfoxygrandpa/phybas-graviz/render"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	stylePaused  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleNode    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	styleHovered = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167"))
	styleEdge    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// headerRows is the number of terminal rows above the canvas; mouse
// coordinates are offset by it before projection into graph space.
const headerRows = 2

func newDemoCmd(cfg *Config) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive terminal simulation",
		Long:  `demo runs the force-directed layout live in the terminal. Press space to pause the simulation and drag nodes with the mouse; press space again to resume.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}
			physics.Scatter(g, interact.BoundSize, cfg.Demo.Seed)

			m := newDemoModel(g, cfg.Demo)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running demo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "graph file in the text interchange format (default: built-in sample)")
	return cmd
}

// loadGraph reads a graph from path, or returns the built-in sample when
// path is empty.
func loadGraph(path string) (*models.Graph, error) {
	if path == "" {
		return ingest.Sample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()
	return ingest.ParseText(path, f)
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(interact.TargetFPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// demoModel is the bubbletea model driving the frame loop. It owns the
// single program State and threads it through interact.Step once per tick.
type demoModel struct {
	state   models.State
	hovered []models.NodeID
	cfg     DemoConfig

	running     bool
	pointerDown bool
	pointer     geometry.Point

	width     int
	height    int
	lastFrame time.Time
	fps       float64
	dropped   int
}

func newDemoModel(g *models.Graph, cfg DemoConfig) demoModel {
	return demoModel{
		state:   models.NewState(g),
		cfg:     cfg,
		running: true,
		width:   80,
		height:  24,
	}
}

func (m demoModel) Init() tea.Cmd {
	return tick()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "e", "tab":
			m.running = !m.running
		case "r":
			physics.Scatter(m.state.Graph, interact.BoundSize, m.cfg.Seed)
		}
		return m, nil

	case tea.MouseMsg:
		m.pointer = m.toGraphSpace(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.pointerDown = true
			}
		case tea.MouseActionRelease:
			m.pointerDown = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame).Seconds()
		}
		m.lastFrame = now
		if dt > 0 {
			m.fps = 1.0 / dt
		}
		if dt > interact.MaxFrameDelta {
			m.dropped++
		}

		frame := interact.Frame{
			DT:          dt,
			Running:     m.running,
			PointerDown: m.pointerDown,
			Pointer:     m.pointer,
		}
		m.state, m.hovered = interact.Step(m.state, frame)
		return m, tick()
	}
	return m, nil
}

// canvasSize returns the canvas dimensions in terminal cells, leaving room
// for the header and the footer.
func (m demoModel) canvasSize() (int, int) {
	cols := m.width
	rows := m.height - headerRows - 2
	if cols < 20 {
		cols = 20
	}
	if rows < 10 {
		rows = 10
	}
	return cols, rows
}

// toGraphSpace converts a terminal cell position into graph space, flipping
// the y axis and clamping into the layout bounds.
func (m demoModel) toGraphSpace(x, y int) geometry.Point {
	cols, rows := m.canvasSize()
	return interact.ToGraphSpace(float64(x), float64(y-headerRows), float64(cols-1), float64(rows-1))
}

func (m demoModel) View() string {
	cols, rows := m.canvasSize()

	opts := render.NewDefaultOptions()
	opts.Bound = interact.BoundSize
	opts.ShowLabels = m.cfg.ShowLabels
	opts.Highlight = m.hovered
	canvas := render.Canvas(m.state.Graph, opts, cols, rows)

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	for _, row := range canvas {
		for _, r := range row {
			switch r {
			case render.GlyphNode:
				b.WriteString(styleNode.Render(string(r)))
			case render.GlyphHovered:
				b.WriteString(styleHovered.Render(string(r)))
			case render.GlyphEdge:
				b.WriteString(styleEdge.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(styleDim.Render("space toggle edit  r rescatter  drag nodes while paused  q quit"))
	b.WriteByte('\n')
	return b.String()
}

func (m demoModel) statusLine() string {
	mode := styleRunning.Render("● " + m.state.Mode.String())
	if m.state.Mode == models.ModeEdit {
		mode = stylePaused.Render("○ " + m.state.Mode.String())
	}

	selected := ""
	if m.state.Dragging {
		if n, ok := m.state.Graph.Nodes[m.state.Selected]; ok {
			selected = "  dragging " + styleHovered.Render(n.Label)
		}
	}

	return fmt.Sprintf("%s  %s  %s%s",
		styleTitle.Render("phybas-graviz"),
		mode,
		styleDim.Render(fmt.Sprintf("%d nodes  %d edges  %.0f fps", len(m.state.Graph.Nodes), len(m.state.Graph.Edges), m.fps)),
		selected,
	)
}
