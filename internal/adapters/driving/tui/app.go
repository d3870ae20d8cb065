package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GeorgePearse/portfolio/internal/core/domain"
)

// maxVisibleRows caps the repository list before scrolling kicks in.
const maxVisibleRows = 15

// App is the portfolio browser model. It implements tea.Model.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles
	keys   *KeyMap

	// query drives the fetch cycle; filters below only narrow the view.
	query domain.Query

	input   textinput.Model
	spinner spinner.Model

	// tags is the frequency table of the current collection.
	tags []domain.TagMeta

	// tagIndex is the active tag filter position, -1 for all.
	tagIndex int

	// selected is the highlighted row in the visible list.
	selected int

	loading bool
	errMsg  string

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser for the given query.
func NewApp(ports *Ports, query domain.Query) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "type to search"
	input.Prompt = "/ "
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   DefaultStyles(),
		keys:     DefaultKeyMap(),
		query:    query,
		input:    input,
		spinner:  sp,
		tagIndex: -1,
		loading:  true,
	}, nil
}

// WithContext sets the context used for fetch cycles.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("portfolio"),
		a.spinner.Tick,
		a.loadCmd(),
	)
}

// loadCmd runs one fetch cycle off the update loop.
func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		err := a.ports.Portfolio.Load(a.ctx, a.query)
		return loadCompleted{Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case loadCompleted:
		a.loading = false
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
		} else {
			a.errMsg = ""
		}
		a.tags = a.ports.Portfolio.Tags()
		a.clampSelection()
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Reload):
		if a.loading {
			return a, nil
		}
		a.loading = true
		return a, tea.Batch(a.spinner.Tick, a.loadCmd())

	case key.Matches(msg, a.keys.NextTag):
		a.cycleTag()
		return a, nil

	case key.Matches(msg, a.keys.Clear):
		a.input.SetValue("")
		a.tagIndex = -1
		a.selected = 0
		return a, nil

	case key.Matches(msg, a.keys.Up):
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.selected < len(a.visible())-1 {
			a.selected++
		}
		return a, nil
	}

	var cmd tea.Cmd
	before := a.input.Value()
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		a.selected = 0
	}
	return a, cmd
}

// cycleTag advances the tag filter: all -> first tag -> ... -> all.
func (a *App) cycleTag() {
	if len(a.tags) == 0 {
		a.tagIndex = -1
		return
	}
	a.tagIndex++
	if a.tagIndex >= len(a.tags) {
		a.tagIndex = -1
	}
	a.selected = 0
}

func (a *App) activeTag() string {
	if a.tagIndex < 0 || a.tagIndex >= len(a.tags) {
		return ""
	}
	return a.tags[a.tagIndex].Label
}

// visible returns the collection narrowed by the current filters.
func (a *App) visible() []domain.Repo {
	filter := domain.Filter{
		Tag:   a.activeTag(),
		Query: a.input.Value(),
	}
	return a.ports.Portfolio.Repos(filter)
}

func (a *App) clampSelection() {
	if n := len(a.visible()); a.selected >= n {
		a.selected = 0
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.loading {
		return fmt.Sprintf("\n  %s fetching repositories for %s...\n",
			a.spinner.View(), a.query.Username)
	}

	var b strings.Builder

	state := a.ports.Portfolio.State()
	b.WriteString(a.styles.Title.Render(fmt.Sprintf("%s — %d repositories",
		a.query.Username, len(state.Repos))))
	b.WriteString("\n")

	if a.errMsg != "" {
		b.WriteString(a.styles.Error.Render("load failed: " + a.errMsg))
		b.WriteString("\n")
		if len(state.Repos) == 0 {
			b.WriteString(a.styles.Help.Render("ctrl+r retry • ctrl+c quit"))
			b.WriteString("\n")
			return b.String()
		}
		b.WriteString(a.styles.Muted.Render("showing previously loaded collection"))
		b.WriteString("\n")
	}

	b.WriteString(a.input.View())
	if tag := a.activeTag(); tag != "" {
		b.WriteString("   " + a.styles.Tag.Render("#"+tag))
	}
	b.WriteString("\n\n")

	repos := a.visible()
	if len(repos) == 0 {
		b.WriteString(a.styles.Muted.Render("no repositories match"))
		b.WriteString("\n")
	} else {
		a.renderList(&b, repos)
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("tab cycle tag • esc clear • ctrl+r reload • ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}

func (a *App) renderList(b *strings.Builder, repos []domain.Repo) {
	start := 0
	if a.selected >= maxVisibleRows {
		start = a.selected - maxVisibleRows + 1
	}
	end := start + maxVisibleRows
	if end > len(repos) {
		end = len(repos)
	}

	for i := start; i < end; i++ {
		r := repos[i]
		row := fmt.Sprintf("  %-30s ★ %-5d %s", r.Name, r.Stars,
			r.UpdatedAt.Format("2006-01-02"))
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render("▸" + row[1:]))
		} else {
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	if a.selected >= 0 && a.selected < len(repos) {
		a.renderDetail(b, repos[a.selected])
	}
}

func (a *App) renderDetail(b *strings.Builder, r domain.Repo) {
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString("  " + r.Description + "\n")
	}
	if len(r.AllTags) > 0 {
		b.WriteString("  " + a.styles.Tag.Render("#"+strings.Join(r.AllTags, " #")) + "\n")
	}
	b.WriteString("  " + a.styles.Muted.Render(r.DocsURL) + "\n")
}

// Run starts the browser and blocks until it exits.
func Run(ctx context.Context, ports *Ports, query domain.Query) error {
	app, err := NewApp(ports, query)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app.WithContext(ctx))
	_, err = p.Run()
	return err
}
