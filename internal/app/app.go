// Package app wires the assessment screen into the root Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edurisk/internal/guidance"
	"github.com/abhisek/edurisk/internal/llm"
	"github.com/abhisek/edurisk/internal/predict"
	"github.com/abhisek/edurisk/internal/screens/assess"
	"github.com/abhisek/edurisk/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. The app is a single screen with
// form, analyzing, and report phases, so there is no screen router.
type AppModel struct {
	screen *assess.Screen
	model  string // provider model shown in the header; "" means local only
	width  int
	height int
}

func newAppModel(provider llm.Provider) AppModel {
	model := ""
	if provider != nil {
		model = provider.ModelID()
	}
	return AppModel{
		screen: assess.New(predict.NewService(provider), guidance.NewService(provider)),
		model:  model,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.screen.Title(), m.model, m.width)
	footer := layout.RenderFooter(m.screen.KeyHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.screen.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. The provider may be nil, which keeps
// every assessment on the deterministic local path.
func Run(provider llm.Provider) error {
	p := tea.NewProgram(newAppModel(provider))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
