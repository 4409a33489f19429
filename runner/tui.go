package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/analysis"
)

// IsTerminal reports whether w is a terminal. The check command only uses the
// TUI when it is.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// TUIFormatter implements Formatter with an animated terminal UI.
type TUIFormatter struct {
	w        io.Writer
	program  *tea.Program
	model    *tuiModel
	done     chan struct{}
	mu       sync.Mutex
	started  bool
	finished bool
}

// NewTUIFormatter creates a TUI formatter with animations.
func NewTUIFormatter(w io.Writer, trees []CheckTree) *TUIFormatter {
	model := newTUIModel(trees)

	opts := []tea.ProgramOption{
		tea.WithOutput(w),
		tea.WithoutSignalHandler(),
		tea.WithAltScreen(),
	}

	if !IsTerminal(w) {
		opts = append(opts, tea.WithInput(nil))
	}

	return &TUIFormatter{
		w:       w,
		program: tea.NewProgram(model, opts...),
		model:   model,
		done:    make(chan struct{}),
	}
}

// Start begins the TUI event loop. Call this before running checks.
func (t *TUIFormatter) Start() error {
	t.mu.Lock()
	t.started = true
	t.mu.Unlock()

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	// Give the program a moment to initialize
	time.Sleep(20 * time.Millisecond)

	return nil
}

// Format sends an event to the TUI.
func (t *TUIFormatter) Format(event Event, _ *Result) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return nil
	}

	t.program.Send(checkEventMsg(event))

	return nil
}

// Summary waits for completion and renders final output.
func (t *TUIFormatter) Summary(result *Result) error {
	t.mu.Lock()
	t.finished = true
	started := t.started
	t.mu.Unlock()

	if started {
		t.program.Send(doneMsg{result: result})
		t.program.Quit()
		<-t.done
	} else {
		t.model.Update(doneMsg{result: result})
	}

	// The TUI used the alternate screen, so exiting it returns to the main
	// screen with clean scrollback.
	_, err := fmt.Fprintln(t.w, t.model.FinalView())

	return err
}

// -----------------------------------------------------------------------------
// Tree Model - Built from the registry before checks run
// -----------------------------------------------------------------------------

// nodeKind identifies what type of tree node this is.
type nodeKind int

const (
	kindSource nodeKind = iota
	kindRelation
	kindCheck
)

// nodeStatus tracks the execution state of a node.
type nodeStatus int

const (
	statusPending nodeStatus = iota
	statusRunning
	statusPass
	statusWarn
	statusFail
	statusSkip
	statusError
)

// treeNode represents a single node in the check tree.
type treeNode struct {
	name     string
	kind     nodeKind
	status   nodeStatus
	children []*treeNode
	parent   *treeNode

	// For leaf nodes (checks)
	elapsed time.Duration
	diags   []analysis.Diagnostic
	err     error
}

// CheckTree holds the tree of checks for one source file.
type CheckTree struct {
	source string
	root   *treeNode
	idx    map[string]*treeNode // "source::schema/table/rule" -> node
}

// BuildCheckTree creates the tree of checks the runner will execute for db.
// Relations are listed in check order, each with one leaf per rule.
func BuildCheckTree(db *dbtypes.Database, rules []*analysis.Rule, source string) CheckTree {
	ct := CheckTree{
		source: source,
		root:   &treeNode{name: source, kind: kindSource},
		idx:    make(map[string]*treeNode),
	}

	for _, target := range analysis.Targets(db) {
		relNode := &treeNode{
			name:   target.Schema.Name + "." + target.Table.Name,
			kind:   kindRelation,
			parent: ct.root,
		}
		ct.root.children = append(ct.root.children, relNode)

		for _, rule := range rules {
			checkNode := &treeNode{name: rule.Name, kind: kindCheck, parent: relNode}
			relNode.children = append(relNode.children, checkNode)

			key := source + "::" + strings.Join([]string{target.Schema.Name, target.Table.Name, rule.Name}, "/")
			ct.idx[key] = checkNode
		}
	}

	return ct
}

// -----------------------------------------------------------------------------
// Bubbletea Model
// -----------------------------------------------------------------------------

// tuiModel is the bubbletea model for the check runner UI.
type tuiModel struct {
	styles  *Styles
	spinner spinner.Model

	width  int
	height int

	trees  []CheckTree
	allIdx map[string]*treeNode

	counters counters

	startTime time.Time
	endTime   time.Time

	finalResult *Result
	isDone      bool
}

type counters struct {
	total   int
	passed  int
	warned  int
	failed  int
	skipped int
	errors  int
}

// Messages
type (
	tickMsg       time.Time
	checkEventMsg Event
	doneMsg       struct{ result *Result }
)

func newTUIModel(trees []CheckTree) *tuiModel {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: SpinnerFrames(),
		FPS:    time.Second / 10,
	}
	s.Style = DefaultStyles().Running

	allIdx := make(map[string]*treeNode)

	for i := range trees {
		for key, node := range trees[i].idx {
			allIdx[key] = node
		}
	}

	return &tuiModel{
		styles:    DefaultStyles(),
		spinner:   s,
		trees:     trees,
		allIdx:    allIdx,
		startTime: time.Now(),
		width:     80,
		height:    24,
		counters:  counters{total: len(allIdx)},
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.tick(),
	)
}

func (m *tuiModel) tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.QuitMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tickMsg:
		if !m.isDone {
			cmds = append(cmds, m.tick())
		}

	case spinner.TickMsg:
		if !m.isDone {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case checkEventMsg:
		m.handleEvent(Event(msg))

	case doneMsg:
		m.isDone = true
		m.endTime = time.Now()
		m.finalResult = msg.result
	}

	return m, tea.Batch(cmds...)
}

func (m *tuiModel) handleEvent(event Event) {
	node, ok := m.allIdx[event.Source+"::"+event.PathString()]
	if !ok {
		return
	}

	switch event.Action {
	case ActionRun:
		node.status = statusRunning

	case ActionPass:
		node.elapsed = event.Elapsed
		node.diags = event.Diagnostics

		if len(event.Diagnostics) > 0 {
			node.status = statusWarn
			m.counters.warned++
		} else {
			node.status = statusPass
		}

		m.counters.passed++

	case ActionFail:
		node.status = statusFail
		node.elapsed = event.Elapsed
		node.diags = event.Diagnostics
		m.counters.failed++

	case ActionSkip:
		node.status = statusSkip
		node.elapsed = event.Elapsed
		m.counters.skipped++

	case ActionError:
		node.status = statusError
		node.elapsed = event.Elapsed
		node.err = event.Error
		m.counters.errors++

	case ActionOutput:
	}
}

// clearEOL is the ANSI escape sequence to clear from cursor to end of line.
const clearEOL = "\033[K"

// FinalView renders the complete final output for printing after the TUI
// exits. Passing relations are collapsed to a single line.
func (m *tuiModel) FinalView() string {
	lines := []string{m.renderHeader(), m.renderProgress(), ""}

	for _, ct := range m.trees {
		lines = append(lines, strings.Split(strings.TrimSuffix(m.renderTree(ct, true), "\n"), "\n")...)
	}

	lines = append(lines, "", m.renderSummary())

	return strings.Join(lines, "\n")
}

func (m *tuiModel) View() string {
	lines := []string{m.renderHeader(), m.renderProgress(), ""}

	for _, ct := range m.trees {
		lines = append(lines, strings.Split(strings.TrimSuffix(m.renderTree(ct, false), "\n"), "\n")...)
	}

	if m.isDone {
		lines = append(lines, "", m.renderSummary())
	}

	for i := range lines {
		lines[i] += clearEOL
	}

	return strings.Join(lines, "\n") + "\n"
}

func (m *tuiModel) renderHeader() string {
	logo := m.styles.Bold.Render("dbtypes")
	subtitle := m.styles.Dim.Render(" check")

	var status string

	switch {
	case m.isDone && (m.counters.failed > 0 || m.counters.errors > 0):
		status = m.styles.Fail.Render("FAIL")
	case m.isDone:
		status = m.styles.Pass.Render("PASS")
	case m.countRunning() > 0:
		status = m.styles.Running.Render(fmt.Sprintf("running %d", m.countRunning()))
	default:
		status = m.styles.Dim.Render("starting")
	}

	return fmt.Sprintf("%s%s  %s", logo, subtitle, status)
}

func (m *tuiModel) countRunning() int {
	count := 0

	for _, node := range m.allIdx {
		if node.status == statusRunning {
			count++
		}
	}

	return count
}

func (m *tuiModel) renderProgress() string {
	done := m.counters.passed + m.counters.failed + m.counters.skipped + m.counters.errors

	total := m.counters.total
	if total == 0 {
		total = 1
	}

	elapsed := time.Since(m.startTime)
	if !m.endTime.IsZero() {
		elapsed = m.endTime.Sub(m.startTime)
	}

	elapsedStr := m.styles.Dim.Render(fmt.Sprintf("[%s]", formatDuration(elapsed)))

	const barWidth = 30

	filled := min(done*barWidth/total, barWidth)
	filledChar, emptyChar := ProgressChars()

	bar := m.styles.ProgressFilled.Render(strings.Repeat(filledChar, filled)) +
		m.styles.ProgressEmpty.Render(strings.Repeat(emptyChar, barWidth-filled))

	counter := m.styles.Muted.Render(fmt.Sprintf("%d/%d", done, m.counters.total))

	return fmt.Sprintf("%s %s %s", elapsedStr, bar, counter)
}

func (m *tuiModel) renderTree(ct CheckTree, collapse bool) string {
	var b strings.Builder

	b.WriteString(m.styles.Path.Render(ct.source))
	b.WriteString("\n")

	for i, child := range ct.root.children {
		m.renderNode(&b, child, "", i == len(ct.root.children)-1, collapse)
	}

	return b.String()
}

// computeGroupStatus calculates the status of a relation from its checks.
func (m *tuiModel) computeGroupStatus(node *treeNode) nodeStatus {
	if node.kind == kindCheck {
		return node.status
	}

	var hasRunning, hasFailed, hasPending, hasWarn bool

	for _, child := range node.children {
		switch m.computeGroupStatus(child) {
		case statusRunning:
			hasRunning = true
		case statusFail, statusError:
			hasFailed = true
		case statusPending:
			hasPending = true
		case statusWarn:
			hasWarn = true
		case statusPass, statusSkip:
		}
	}

	switch {
	case hasRunning:
		return statusRunning
	case hasFailed:
		return statusFail
	case hasPending || len(node.children) == 0:
		return statusPending
	case hasWarn:
		return statusWarn
	default:
		return statusPass
	}
}

func (m *tuiModel) renderNode(b *strings.Builder, node *treeNode, prefix string, isLast, collapse bool) {
	branch := "├─"
	if isLast {
		branch = "╰─"
	}

	name := node.name

	switch node.kind {
	case kindRelation:
		name = m.styles.Bold.Render(name)
	case kindCheck:
		name = m.styles.CheckName.Render(name)
	case kindSource:
	}

	dur := ""
	if node.kind == kindCheck && node.status != statusPending && node.status != statusRunning {
		dur = m.styles.Dim.Render(fmt.Sprintf("  [%s]", formatDuration(node.elapsed)))
	}

	b.WriteString(m.styles.Dim.Render(prefix + branch + " "))
	b.WriteString(m.renderSymbol(node))
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(dur)
	b.WriteString("\n")

	childPrefix := prefix + "│ "
	if isLast {
		childPrefix = prefix + "  "
	}

	for _, d := range node.diags {
		style := m.styles.Warn
		if d.Severity == analysis.SeverityError {
			style = m.styles.Fail
		}

		b.WriteString(m.styles.Dim.Render(childPrefix + "   "))
		b.WriteString(style.Render(d.Message))
		b.WriteString("\n")
	}

	if node.status == statusError && node.err != nil {
		b.WriteString(m.styles.Dim.Render(childPrefix + "   "))
		b.WriteString(m.styles.Error.Render(node.err.Error()))
		b.WriteString("\n")
	}

	if collapse && node.kind == kindRelation && m.computeGroupStatus(node) == statusPass {
		return
	}

	for i, child := range node.children {
		m.renderNode(b, child, childPrefix, i == len(node.children)-1, collapse)
	}
}

func (m *tuiModel) renderSymbol(node *treeNode) string {
	status := node.status
	if node.kind != kindCheck {
		status = m.computeGroupStatus(node)
	}

	switch status {
	case statusPending:
		return m.styles.Dim.Render("⋯")
	case statusRunning:
		return m.spinner.View()
	case statusPass:
		return m.styles.Pass.Render(m.styles.SymbolPass)
	case statusWarn:
		return m.styles.Warn.Render(m.styles.SymbolWarn)
	case statusFail:
		return m.styles.Fail.Render(m.styles.SymbolFail)
	case statusSkip:
		return m.styles.Skip.Render(m.styles.SymbolSkip)
	case statusError:
		return m.styles.Error.Render(m.styles.SymbolFail)
	default:
		return " "
	}
}

func (m *tuiModel) renderSummary() string {
	var parts []string

	if m.counters.passed > 0 {
		parts = append(parts, m.styles.Pass.Render(fmt.Sprintf("%d passed", m.counters.passed)))
	}

	if m.counters.warned > 0 {
		parts = append(parts, m.styles.Warn.Render(fmt.Sprintf("%d with warnings", m.counters.warned)))
	}

	if m.counters.failed > 0 {
		parts = append(parts, m.styles.Fail.Render(fmt.Sprintf("%d failed", m.counters.failed)))
	}

	if m.counters.skipped > 0 {
		parts = append(parts, m.styles.Skip.Render(fmt.Sprintf("%d skipped", m.counters.skipped)))
	}

	if m.counters.errors > 0 {
		parts = append(parts, m.styles.Error.Render(fmt.Sprintf("%d errors", m.counters.errors)))
	}

	if len(parts) == 0 {
		return m.styles.Dim.Render("  No checks run")
	}

	total := m.styles.Muted.Render(fmt.Sprintf("(%d total)", m.counters.total))
	sep := m.styles.Dim.Render(" │ ")

	return "  " + strings.Join(parts, sep) + " " + total
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "<1ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}

// -----------------------------------------------------------------------------
// TUIHandler - Bridges TUI to Handler interface
// -----------------------------------------------------------------------------

// TUIHandler wraps TUIFormatter to implement Handler.
type TUIHandler struct {
	w         io.Writer
	formatter *TUIFormatter
	stderr    io.Writer
}

// NewTUIHandler creates a handler that uses the TUI formatter.
// Call SetTrees before Start to initialize the tree view.
func NewTUIHandler(w, stderr io.Writer) *TUIHandler {
	return &TUIHandler{w: w, stderr: stderr}
}

// SetTrees initializes the TUI with the checks it will display.
func (h *TUIHandler) SetTrees(trees []CheckTree) {
	h.formatter = NewTUIFormatter(h.w, trees)
}

// Start initializes the TUI.
func (h *TUIHandler) Start() error {
	if h.formatter == nil {
		h.formatter = NewTUIFormatter(h.w, nil)
	}

	return h.formatter.Start()
}

// Event sends an event to the TUI.
func (h *TUIHandler) Event(_ context.Context, event Event, result *Result) error {
	if h.formatter == nil {
		return nil
	}

	return h.formatter.Format(event, result)
}

// Err writes to stderr.
func (h *TUIHandler) Err(text string) error {
	_, err := h.stderr.Write([]byte(text + "\n"))

	return err
}

// Summary renders the final summary.
func (h *TUIHandler) Summary(result *Result) error {
	if h.formatter == nil {
		return nil
	}

	return h.formatter.Summary(result)
}
