// Package tui implements an interactive terminal workbench for polynomial
// multiplication, built on bubbletea. It lets the user edit the operands,
// run the registered algorithms, and inspect the comparison results without
// leaving the terminal.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/polymul/internal/config"
	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/format"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/poly"
)

// Messages exchanged between the bridge goroutines and the model.
type (
	// ProgressMsg carries a progress update from a running multiplier.
	ProgressMsg struct {
		MultiplierIndex int
		Value           float64
		AverageProgress float64
	}

	// ProgressDoneMsg signals that the progress channel has been drained.
	ProgressDoneMsg struct{}

	// ComparisonResultsMsg carries the per-algorithm comparison results.
	ComparisonResultsMsg struct {
		Results []orchestration.MultiplicationResult
	}

	// FinalResultMsg carries the product selected for display.
	FinalResultMsg struct {
		Result orchestration.MultiplicationResult
		Opts   orchestration.PresentationOptions
	}

	// ErrorMsg signals that no algorithm completed successfully.
	ErrorMsg struct {
		Err error
	}

	// MultiplicationCompleteMsg signals the end of an orchestration run.
	MultiplicationCompleteMsg struct {
		ExitCode   int
		Generation uint64
	}

	// ContextCancelledMsg signals that the parent context was cancelled.
	ContextCancelledMsg struct {
		Err        error
		Generation uint64
	}
)

const (
	inputA = iota
	inputB
	numInputs
)

// Model is the root bubbletea model for the TUI workbench.
type Model struct {
	inputs     [numInputs]textinput.Model
	focusIndex int

	keymap KeyMap

	running     bool
	avgProgress float64
	results     []orchestration.MultiplicationResult
	final       *orchestration.MultiplicationResult
	inputErr    string
	runErr      string
	exitCode    int
	generation  uint64

	parentCtx context.Context
	ctx       context.Context
	cancel    context.CancelFunc

	factory poly.MultiplierFactory
	cfg     config.AppConfig
	ref     *programRef
	version string
	width   int
}

// NewModel creates a new TUI model with the operand fields prefilled from the
// configuration.
func NewModel(parentCtx context.Context, factory poly.MultiplierFactory, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	m := Model{
		keymap:    DefaultKeyMap(),
		exitCode:  apperrors.ExitSuccess,
		parentCtx: parentCtx,
		ctx:       ctx,
		cancel:    cancel,
		factory:   factory,
		cfg:       cfg,
		ref:       &programRef{},
		version:   version,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "comma-separated coefficients, lowest degree first"
		ti.CharLimit = 0
		ti.Width = 48
		m.inputs[i] = ti
	}
	m.inputs[inputA].SetValue(cfg.A)
	m.inputs[inputB].SetValue(cfg.B)
	m.inputs[inputA].Focus()

	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, watchContextCmd(m.ctx, m.generation))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ProgressMsg:
		m.avgProgress = msg.AverageProgress
		return m, nil

	case ProgressDoneMsg:
		m.avgProgress = 1.0
		return m, nil

	case ComparisonResultsMsg:
		m.results = msg.Results
		return m, nil

	case FinalResultMsg:
		result := msg.Result
		m.final = &result
		return m, nil

	case ErrorMsg:
		m.runErr = msg.Err.Error()
		return m, nil

	case MultiplicationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous run
		}
		m.running = false
		m.exitCode = msg.ExitCode
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Next):
		m.focusIndex = (m.focusIndex + 1) % numInputs
		cmds := make([]tea.Cmd, 0, numInputs)
		for i := range m.inputs {
			if i == m.focusIndex {
				cmds = append(cmds, m.inputs[i].Focus())
			} else {
				m.inputs[i].Blur()
			}
		}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keymap.Reset):
		m.results = nil
		m.final = nil
		m.inputErr = ""
		m.runErr = ""
		m.avgProgress = 0
		m.inputs[inputA].SetValue(m.cfg.A)
		m.inputs[inputB].SetValue(m.cfg.B)
		return m, nil

	case key.Matches(msg, m.keymap.Run):
		if m.running {
			return m, nil
		}
		return m.startRun()
	}

	return m, m.updateInputs(msg)
}

// updateInputs forwards a message to the focused text input.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, numInputs)
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// startRun validates the operand fields and launches the orchestration.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	coeffsA, err := config.ParseCoefficients(m.inputs[inputA].Value())
	if err != nil || len(coeffsA) == 0 {
		m.inputErr = fmt.Sprintf("invalid operand A: %v", errOrEmpty(err))
		return m, nil
	}
	coeffsB, err := config.ParseCoefficients(m.inputs[inputB].Value())
	if err != nil || len(coeffsB) == 0 {
		m.inputErr = fmt.Sprintf("invalid operand B: %v", errOrEmpty(err))
		return m, nil
	}

	multipliers := orchestration.GetMultipliersToRun(m.cfg.Algo, m.factory)
	if len(multipliers) == 0 {
		m.inputErr = fmt.Sprintf("no algorithm registered under %q", m.cfg.Algo)
		return m, nil
	}

	m.inputErr = ""
	m.runErr = ""
	m.results = nil
	m.final = nil
	m.avgProgress = 0
	m.running = true
	m.generation++

	a := poly.FromReals(coeffsA)
	b := poly.FromReals(coeffsB)

	return m, tea.Batch(
		startMultiplicationCmd(m.ref, m.ctx, multipliers, a, b, m.cfg, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

func errOrEmpty(err error) any {
	if err != nil {
		return err
	}
	return "no coefficients"
}

// View renders the workbench.
func (m Model) View() string {
	var b strings.Builder

	title := titleStyle.Render("Polynomial Multiplier") + " " + versionStyle.Render(m.version)
	b.WriteString(title + "\n\n")

	b.WriteString(m.renderInput("Operand A", inputA))
	b.WriteString(m.renderInput("Operand B", inputB))

	if m.inputErr != "" {
		b.WriteString(errorStyle.Render(m.inputErr) + "\n")
	}

	if m.running {
		b.WriteString("\n" + progressBarStyle.Render(renderProgressBar(m.avgProgress, 40)))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" %6.2f%%", m.avgProgress*100)) + "\n")
	}

	if len(m.results) > 0 {
		b.WriteString("\n" + m.renderResults())
	}

	if m.final != nil && m.final.Product != nil {
		b.WriteString("\n" + panelStyle.Render(
			labelStyle.Render("Product")+"\n"+
				resultStyle.Render(renderPolynomial(m.final.Product, m.cfg.Verbose))) + "\n")
	}

	if m.runErr != "" {
		b.WriteString("\n" + errorStyle.Render("Failure: "+m.runErr) + "\n")
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func (m Model) renderInput(label string, idx int) string {
	style := blurredStyle
	if idx == m.focusIndex {
		style = focusedStyle
	}
	return style.Render(label) + "  " + m.inputs[idx].View() + "\n"
}

func (m Model) renderResults() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Algorithm    Duration    Status") + "\n")
	for _, res := range m.results {
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		status := successStyle.Render("ok")
		if res.Err != nil {
			status = errorStyle.Render(res.Err.Error())
		}
		b.WriteString(fmt.Sprintf("%-12s %-11s %s\n", res.Name, duration, status))
	}
	return b.String()
}

func (m Model) renderFooter() string {
	bindings := []key.Binding{m.keymap.Run, m.keymap.Next, m.keymap.Reset, m.keymap.Quit}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// renderProgressBar draws a fixed-width textual progress bar.
func renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// tuiCoefficientLimit is the coefficient count from which the displayed
// product is truncated.
const tuiCoefficientLimit = 16

// renderPolynomial renders the product, truncating long polynomials unless
// verbose is set.
func renderPolynomial(p *poly.Polynomial, verbose bool) string {
	full := p.String()
	if verbose || p.Len() <= tuiCoefficientLimit {
		return full
	}
	terms := strings.Fields(full)
	if len(terms) <= 8 {
		return full
	}
	return strings.Join(terms[:4], " ") + " ... " + strings.Join(terms[len(terms)-4:], " ")
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, factory poly.MultiplierFactory, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, factory, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startMultiplicationCmd returns a tea.Cmd that launches the orchestration.
func startMultiplicationCmd(ref *programRef, ctx context.Context, multipliers []poly.Multiplier, a, b *poly.Polynomial, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteMultiplications(ctx, multipliers, a, b, cfg.ToMultiplyOptions(), progressReporter, io.Discard)
		presOpts := orchestration.PresentationOptions{
			Verbose:   cfg.Verbose,
			Details:   cfg.Details,
			Tolerance: cfg.Tolerance,
		}
		exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, io.Discard)

		return MultiplicationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
