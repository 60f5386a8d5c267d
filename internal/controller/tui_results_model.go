package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/flagstrip/internal/model"
)

type tickMsg time.Time

var statusColors = map[m.OutcomeStatus]lipgloss.Color{
	m.StatusResolved:        lipgloss.Color("2"),  // Green
	m.StatusPartialAccepted: lipgloss.Color("3"),  // Yellow
	m.StatusUnchanged:       lipgloss.Color("8"),  // Gray
	m.StatusPartial:         lipgloss.Color("1"),  // Red
	m.StatusFailed:          lipgloss.Color("1"),  // Red
	m.StatusIOError:         lipgloss.Color("1"),  // Red
	m.StatusCanceled:        lipgloss.Color("13"), // Magenta
}

var classColors = map[string]lipgloss.Color{
	"always-on":  lipgloss.Color("2"),
	"always-off": lipgloss.Color("1"),
}

// resultDelegate renders outcome and feature rows.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	selected := index == lm.Index()

	switch it := item.(type) {
	case outcomeItem:
		_, _ = fmt.Fprint(w, d.renderOutcome(it, selected, lm.Width()))
	case featureItem:
		_, _ = fmt.Fprint(w, d.renderFeature(it, selected, lm.Width()))
	}
}

func (d resultDelegate) renderOutcome(it outcomeItem, selected bool, width int) string {
	pathWidth := width - 30 // status (16) + lines (6) + passes (4) + spacing

	statusStyle := lipgloss.NewStyle().Width(16).Bold(true)
	numberStyle := lipgloss.NewStyle().Width(6).Align(lipgloss.Right)
	passStyle := lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	path := truncateToWidth(it.path, pathWidth)

	if selected {
		statusStyle = statusStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		numberStyle = numberStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		passStyle = passStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		pathStyle = pathStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		path = animateScroll(it.path, pathWidth, d.offset)
	} else {
		color, ok := statusColors[it.status]
		if !ok {
			color = lipgloss.Color("8")
		}

		statusStyle = statusStyle.Foreground(color)
		numberStyle = numberStyle.Foreground(lipgloss.Color("11"))
		passStyle = passStyle.Foreground(lipgloss.Color("5"))
	}

	return fmt.Sprintf("%s  %s  %s  %s",
		statusStyle.Render(string(it.status)),
		numberStyle.Render(fmt.Sprintf("%d", it.linesRemoved)),
		passStyle.Render(fmt.Sprintf("%d", it.passes)),
		pathStyle.Render(path),
	)
}

func (d resultDelegate) renderFeature(it featureItem, selected bool, width int) string {
	classStyle := lipgloss.NewStyle().Width(12).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if selected {
		classStyle = classStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		nameStyle = nameStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	} else {
		classStyle = classStyle.Foreground(classColors[it.class])
	}

	return fmt.Sprintf("%s  %s",
		classStyle.Render(it.class),
		nameStyle.Render(truncateToWidth(it.name, width-14)),
	)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "
	pause := 5 // ticks before scrolling starts

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// resultsModel lists unit outcomes, or the classification in features mode.
type resultsModel struct {
	mode         StartMode
	width        int
	height       int
	list         list.Model
	delegate     resultDelegate
	items        []list.Item
	info         RunInfo
	warnings     []string
	summary      *m.Summary
	listing      *FeatureListing
	animOffset   int
	lastSelected int
}

func newResultsModel(mode StartMode) resultsModel {
	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter by path or status…"

	return resultsModel{
		mode:         mode,
		width:        80,
		height:       24,
		list:         resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (rm resultsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.list.SetWidth(rm.width)

	case tickMsg:
		if rm.list.FilterState() == list.Filtering {
			return rm, nil
		}

		rm.animOffset++
		rm.delegate.offset = rm.animOffset
		rm.list.SetDelegate(rm.delegate)

		return rm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		return rm.handleKey(msg)

	case warningsMsg:
		rm.warnings = append(rm.warnings, msg.warnings...)

	case runInfoMsg:
		rm.info = msg.info

	case outcomeMsg:
		rm = rm.appendItem(outcomeItem{
			path:         string(msg.outcome.Path),
			status:       msg.outcome.Status,
			linesRemoved: msg.outcome.LinesRemoved,
			passes:       msg.outcome.Passes,
			message:      msg.outcome.Message,
		})

	case summaryMsg:
		sum := msg.report.Summary
		rm.summary = &sum

	case featuresMsg:
		listing := msg.listing
		rm.listing = &listing
		rm.warnings = append(rm.warnings, listing.Conflicts...)

		for _, f := range listing.Enabled {
			rm = rm.appendItem(featureItem{name: f, class: "always-on"})
		}

		for _, f := range listing.Disabled {
			rm = rm.appendItem(featureItem{name: f, class: "always-off"})
		}
	}

	return rm, cmd
}

func (rm resultsModel) handleKey(msg tea.KeyMsg) (resultsModel, tea.Cmd) {
	if rm.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return rm, tea.Quit
		}
	}

	var cmd tea.Cmd

	rm.list, cmd = rm.list.Update(msg)

	if rm.list.Index() != rm.lastSelected {
		rm.lastSelected = rm.list.Index()
		rm.animOffset = 0
		rm.delegate.offset = 0
		rm.list.SetDelegate(rm.delegate)
	}

	return rm, cmd
}

func (rm resultsModel) appendItem(item list.Item) resultsModel {
	rm.items = append(rm.items, item)
	rm.list.SetItems(rm.items)

	if rm.lastSelected == -1 {
		rm.lastSelected = 0
	}

	return rm
}

func (rm resultsModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width)

	sections := []string{
		titleStyle.Render(rm.title()),
		rm.renderHeader(),
	}

	if w := rm.renderWarnings(); w != "" {
		sections = append(sections, w)
	}

	sections = append(sections,
		rm.renderTable(),
		footerStyle.Render("↑/k up • ↓/j down • / filter • q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// inlineView renders every item without the interactive list chrome.
func (rm resultsModel) inlineView() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render(rm.title()))
	b.WriteString("\n")
	b.WriteString(rm.renderHeader())
	b.WriteString("\n")

	if w := rm.renderWarnings(); w != "" {
		b.WriteString(w)
		b.WriteString("\n")
	}

	messageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(6)

	for _, item := range rm.items {
		switch it := item.(type) {
		case outcomeItem:
			b.WriteString("  " + rm.delegate.renderOutcome(it, false, rm.width) + "\n")

			if it.message != "" && it.status.IsFailure() {
				b.WriteString(messageStyle.Render(it.message) + "\n")
			}
		case featureItem:
			b.WriteString("  " + rm.delegate.renderFeature(it, false, rm.width) + "\n")
		}
	}

	return b.String()
}

func (rm resultsModel) title() string {
	switch rm.mode {
	case ModeFeatures:
		return "flagstrip · feature classification"
	case ModeView:
		return "flagstrip · saved report"
	case ModeResolve:
		return "flagstrip · conditional resolution"
	default:
		return "flagstrip"
	}
}

func (rm resultsModel) renderHeader() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	if rm.mode == ModeFeatures {
		if rm.listing == nil {
			return style.Render("Loading classification…")
		}

		return style.Render(fmt.Sprintf("Prefix: %s   Guard: %s   Always-on: %s   Always-off: %s",
			accent.Render(rm.listing.Prefix),
			accent.Render(rm.listing.GuardSuffix),
			accent.Render(fmt.Sprintf("%d", len(rm.listing.Enabled))),
			accent.Render(fmt.Sprintf("%d", len(rm.listing.Disabled))),
		))
	}

	header := fmt.Sprintf("Root: %s   Files: %s",
		accent.Render(string(rm.info.Root)),
		accent.Render(fmt.Sprintf("%d", rm.info.Units)),
	)

	if rm.info.DryRun {
		header += "   " + accent.Render("dry run")
	}

	if rm.summary != nil {
		header += fmt.Sprintf("\nModified: %s   Failed: %s   Lines removed: %s   Avg passes: %s",
			accent.Render(fmt.Sprintf("%d", rm.summary.Modified)),
			accent.Render(fmt.Sprintf("%d", rm.summary.Failed)),
			accent.Render(fmt.Sprintf("%d", rm.summary.LinesRemoved)),
			accent.Render(fmt.Sprintf("%.1f", rm.summary.AveragePasses())),
		)
	}

	return style.Render(header)
}

func (rm resultsModel) renderWarnings() string {
	if len(rm.warnings) == 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Padding(0, 0, 1, 2)

	lines := make([]string, 0, len(rm.warnings))
	for _, w := range rm.warnings {
		lines = append(lines, "⚠ "+w)
	}

	return style.Render(strings.Join(lines, "\n"))
}

func (rm resultsModel) renderTable() string {
	listHeight := max(rm.height-10, 5)
	listWidth := rm.width - 6

	rm.list.SetHeight(listHeight)
	rm.list.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	var headers string
	if rm.mode == ModeFeatures {
		headers = headerStyle.Render(fmt.Sprintf("%-12s  %s", "Class", "Feature"))
	} else {
		headers = headerStyle.Render(fmt.Sprintf("%-16s  %6s  %4s  %s", "Status", "Lines", "Pass", "File Path"))
	}

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(lipgloss.JoinVertical(lipgloss.Left, headers, rm.list.View()))
}
