package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cashsite/internal/clock"
	"cashsite/internal/content"
	"cashsite/internal/logging"
	"cashsite/internal/scramble"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HeaderText is the scrambling gallery heading.
const HeaderText = "Selected Works"

// Row layout of the gallery view. Pages share the header and section
// rows and start their viewport at listTop.
const (
	headerRow   = 0
	sectionsRow = 1
	tabsRow     = 2
	listTop     = 4
	footerRows  = 3
)

// Options configures a Showcase.
type Options struct {
	Portfolio   *content.Portfolio
	ContentPath string
	Watch       bool

	// Pages besides the works gallery; nil shows the built-in samples.
	Performance *content.Performance
	Store       *content.Store
	Services    *content.Services

	// Binding applies to work titles; Class defaults to TagTitle.
	Binding       scramble.Binding
	EffectOptions []scramble.Option
	Styles        Styles
	// MarkdownStyle overrides the glamour style picked from Styles.
	MarkdownStyle string
	Keys          *KeyMap
	// Clock drives reload debouncing; nil is real time.
	Clock clock.Clock
}

type reloadMsg struct {
	portfolio *content.Portfolio
	err       error
}

// Showcase is the works gallery: a scrambling header, category tabs, a
// list of scrambling titles and a modal viewer. The performance, store
// and services pages are scrollable documents under the same header.
type Showcase struct {
	opts   Options
	keys   KeyMap
	styles Styles
	help   help.Model

	header    *ScrambleText
	portfolio *content.Portfolio
	category  int
	works     []content.Work
	items     []*ScrambleText
	cursor    int
	offset    int
	hovered   int

	modal *modal

	section     Section
	page        *page
	performance *content.Performance
	store       *content.Store
	services    *content.Services

	width  int
	height int
	status string
	failed bool

	watcher   *content.Watcher
	debouncer *Debouncer
	reloads   chan reloadMsg
	done      chan struct{}
	closeOnce sync.Once
}

// page is the state of a non-gallery section. selected picks a
// performance project or service; open is the expanded service or -1.
type page struct {
	selected int
	open     int
	viewport viewport.Model
}

type modal struct {
	work     content.Work
	title    *ScrambleText
	viewport viewport.Model
	markdown string
}

// NewShowcase builds the gallery. A nil portfolio shows the built-in
// sample.
func NewShowcase(opts Options) *Showcase {
	if opts.Portfolio == nil {
		opts.Portfolio = content.SamplePortfolio()
	}
	if opts.Performance == nil {
		opts.Performance = content.SamplePerformance()
	}
	if opts.Store == nil {
		opts.Store = content.SampleStore()
	}
	if opts.Services == nil {
		opts.Services = content.SampleServices()
	}
	if opts.Binding.Class == "" {
		opts.Binding.Class = TagTitle
	}
	if opts.Styles.Theme.Name == "" {
		opts.Styles = DefaultStyles()
	}
	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	m := &Showcase{
		opts:      opts,
		keys:      keys,
		styles:    opts.Styles,
		help:      help.New(),
		portfolio: opts.Portfolio,
		hovered:   -1,

		performance: opts.Performance,
		store:       opts.Store,
		services:    opts.Services,

		width:     80,
		height:    24,
		debouncer: NewDebouncer(DefaultReloadDuration, opts.Clock),
		reloads:   make(chan reloadMsg, 1),
		done:      make(chan struct{}),
	}
	m.header = NewScrambleText(HeaderText, scramble.Binding{
		EnableOnHover: opts.Binding.EnableOnHover,
		AutoStart:     opts.Binding.AutoStart,
		Class:         TagHeading,
	}, m.styles, opts.EffectOptions...)
	m.rebuildItems()
	return m
}

// Run shows the gallery until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := NewShowcase(opts)
	defer m.Shutdown()

	if opts.Watch && opts.ContentPath != "" {
		if err := m.StartWatching(ctx); err != nil {
			logging.Get(logging.CategoryUI).Warnw("content watch disabled", "error", err)
		}
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("showcase: %w", err)
	}
	return nil
}

// StartWatching reloads the portfolio from ContentPath when it changes.
func (m *Showcase) StartWatching(ctx context.Context) error {
	path := m.opts.ContentPath
	w, err := content.NewWatcher(path, func(string) {
		m.debouncer.Debounce(func() { m.reload(path) })
	})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	m.watcher = w
	return nil
}

// reload loads path and hands the result to the bubbletea loop, replacing
// any reload that has not been picked up yet.
func (m *Showcase) reload(path string) {
	timer := logging.StartTimer(logging.CategoryContent, "reload")
	p, err := content.LoadPortfolio(path)
	timer.StopWithThreshold(100 * time.Millisecond)
	msg := reloadMsg{portfolio: p, err: err}
	for {
		select {
		case <-m.done:
			return
		case m.reloads <- msg:
			return
		default:
		}
		select {
		case <-m.reloads:
		default:
		}
	}
}

// forceReload rereads the content file now instead of waiting for the
// watcher.
func (m *Showcase) forceReload() tea.Cmd {
	path := m.opts.ContentPath
	if path == "" {
		m.status = "no content file to reload"
		m.failed = false
		return nil
	}
	m.debouncer.Immediate(func() { m.reload(path) })
	return nil
}

func (m *Showcase) waitForReload() tea.Cmd {
	reloads, done := m.reloads, m.done
	return func() tea.Msg {
		select {
		case r := <-reloads:
			return r
		case <-done:
			return nil
		}
	}
}

// Shutdown releases every effect and stops watching. Safe to call twice.
func (m *Showcase) Shutdown() {
	m.closeOnce.Do(func() {
		if m.watcher != nil {
			m.watcher.Stop()
		}
		m.debouncer.Cancel()
		close(m.done)
		m.header.Close()
		m.closeItems()
		m.closeModal()
		logging.UI("showcase shut down")
	})
}

// Init starts every frame listener and the reload listener.
func (m *Showcase) Init() tea.Cmd {
	cmds := []tea.Cmd{m.header.Init(), m.waitForReload()}
	for _, item := range m.items {
		cmds = append(cmds, item.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles input, frames and reloads.
func (m *Showcase) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return m, m.routeFrame(msg)

	case reloadMsg:
		return m, tea.Batch(m.applyReload(msg), m.waitForReload())

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clampOffset()
		if m.modal != nil {
			m.renderModalBody()
		}
		m.renderPage()
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.modal != nil {
			return m, m.handleModalKey(msg)
		}
		if m.page != nil {
			return m, m.handlePageKey(msg)
		}
		return m, m.handleGalleryKey(msg)
	}
	return m, nil
}

func (m *Showcase) routeFrame(msg FrameMsg) tea.Cmd {
	if msg.ID == m.header.ID() {
		return m.header.Update(msg)
	}
	if m.modal != nil && msg.ID == m.modal.title.ID() {
		return m.modal.title.Update(msg)
	}
	for _, item := range m.items {
		if item.ID() == msg.ID {
			return item.Update(msg)
		}
	}
	// Frame from a component that has since been replaced.
	return nil
}

func (m *Showcase) applyReload(msg reloadMsg) tea.Cmd {
	if msg.err != nil {
		logging.ContentError("reload failed", "error", msg.err)
		m.status = fmt.Sprintf("reload failed: %v", msg.err)
		m.failed = true
		return nil
	}
	m.portfolio = msg.portfolio
	m.status = fmt.Sprintf("reloaded %d works", len(msg.portfolio.Works))
	m.failed = false
	logging.Content("portfolio reloaded", "works", len(msg.portfolio.Works), "source", msg.portfolio.Source)
	return m.rebuildItems()
}

func (m *Showcase) handleGalleryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.Shutdown()
		return tea.Quit
	case key.Matches(msg, m.keys.Sections):
		return m.SelectSection(sectionForKey(msg))
	case key.Matches(msg, m.keys.Reload):
		return m.forceReload()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Left):
		return m.SelectCategory(m.category - 1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.NextTab):
		return m.SelectCategory(m.category + 1)
	case key.Matches(msg, m.keys.Replay):
		m.header.Replay()
		if item := m.current(); item != nil {
			item.Replay()
		}
	case key.Matches(msg, m.keys.Open):
		return m.openModal()
	}
	return nil
}

func (m *Showcase) handlePageKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Shutdown()
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.SelectSection(SectionWorks)
	case key.Matches(msg, m.keys.Sections):
		return m.SelectSection(sectionForKey(msg))
	case key.Matches(msg, m.keys.Reload):
		return m.forceReload()
	case key.Matches(msg, m.keys.Replay):
		m.header.Replay()
		return nil
	}

	if n := m.pageEntries(); n > 0 {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.selectEntry(m.page.selected - 1)
			return nil
		case key.Matches(msg, m.keys.Down):
			m.selectEntry(m.page.selected + 1)
			return nil
		case key.Matches(msg, m.keys.Open) && m.section == SectionServices:
			m.ToggleService(m.page.selected)
			return nil
		}
	}

	var cmd tea.Cmd
	m.page.viewport, cmd = m.page.viewport.Update(msg)
	return cmd
}

func (m *Showcase) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		if msg.String() == "ctrl+c" {
			m.Shutdown()
			return tea.Quit
		}
		m.closeModal()
		return nil
	case key.Matches(msg, m.keys.Replay):
		m.modal.title.Replay()
		return nil
	}
	// Scrolling keys belong to the viewport.
	var cmd tea.Cmd
	m.modal.viewport, cmd = m.modal.viewport.Update(msg)
	return cmd
}

func (m *Showcase) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.modal != nil {
		// Border and padding put the title on the third row.
		m.modal.title.Hover(msg.Y == 2)
		var cmd tea.Cmd
		m.modal.viewport, cmd = m.modal.viewport.Update(msg)
		return cmd
	}

	m.header.Hover(msg.Y == headerRow)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == sectionsRow {
		if sec := m.sectionAt(msg.X); sec >= 0 {
			return m.SelectSection(sec)
		}
		return nil
	}
	if m.page != nil {
		var cmd tea.Cmd
		m.page.viewport, cmd = m.page.viewport.Update(msg)
		return cmd
	}

	idx := m.itemAt(msg.Y)
	m.setHovered(idx)

	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Y == tabsRow {
			if tab := m.tabAt(msg.X); tab >= 0 {
				return m.SelectCategory(tab)
			}
			return nil
		}
		if idx >= 0 {
			m.setCursor(idx)
			return m.openModal()
		}
	}
	return nil
}

// itemAt maps a screen row to an index into items, or -1.
func (m *Showcase) itemAt(y int) int {
	row := y - listTop
	if row < 0 || row >= m.listHeight() {
		return -1
	}
	idx := m.offset + row
	if idx >= len(m.items) {
		return -1
	}
	return idx
}

// sectionAt maps a column on the section row to a section, or -1.
func (m *Showcase) sectionAt(x int) Section {
	pos := 0
	sep := lipgloss.Width(sectionSeparator)
	for _, sec := range Sections {
		w := lipgloss.Width(m.renderSection(sec))
		if x >= pos && x < pos+w {
			return sec
		}
		pos += w + sep
	}
	return -1
}

// tabAt maps a column on the tab row to a category index, or -1.
func (m *Showcase) tabAt(x int) int {
	pos := 0
	for i, c := range content.Categories {
		w := lipgloss.Width(m.renderTab(i, c))
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}

func (m *Showcase) setHovered(idx int) {
	if idx == m.hovered {
		return
	}
	if m.hovered >= 0 && m.hovered < len(m.items) && m.hovered != m.cursor {
		m.items[m.hovered].Hover(false)
	}
	m.hovered = idx
	if idx >= 0 {
		m.items[idx].Hover(true)
	}
}

// SelectCategory switches the filter, wrapping at both ends.
func (m *Showcase) SelectCategory(idx int) tea.Cmd {
	n := len(content.Categories)
	m.category = ((idx % n) + n) % n
	m.cursor = 0
	m.offset = 0
	logging.UI("category selected", "category", content.Categories[m.category].ID)
	return m.rebuildItems()
}

// SelectSection switches page. The header takes the page title and
// decodes into it when it was already running or titles auto-start.
func (m *Showcase) SelectSection(sec Section) tea.Cmd {
	if sec < SectionWorks || sec > SectionServices || sec == m.section {
		return nil
	}
	m.closeModal()
	if sec != SectionWorks {
		m.setHovered(-1)
	}
	m.section = sec
	m.header.SetText(sec.Title())
	if m.header.Running() || m.opts.Binding.AutoStart {
		m.header.Replay()
	}

	m.page = nil
	if sec != SectionWorks {
		m.page = &page{open: -1}
		m.renderPage()
	}
	logging.UI("section selected", "section", sec.Label())
	return nil
}

// Section is the page being shown.
func (m *Showcase) Section() Section { return m.section }

// PageSelected is the highlighted entry of the performance or services
// page.
func (m *Showcase) PageSelected() int {
	if m.page == nil {
		return 0
	}
	return m.page.selected
}

// OpenService is the expanded service, or -1.
func (m *Showcase) OpenService() int {
	if m.page == nil || m.section != SectionServices {
		return -1
	}
	return m.page.open
}

// ToggleService expands service idx, or collapses it when already open.
func (m *Showcase) ToggleService(idx int) {
	if m.section != SectionServices || idx < 0 || idx >= len(m.services.Items) {
		return
	}
	m.page.selected = idx
	if m.page.open == idx {
		m.page.open = -1
	} else {
		m.page.open = idx
	}
	logging.UI("service toggled", "service", m.services.Items[idx].Name, "open", m.page.open == idx)
	m.renderPage()
}

func sectionForKey(msg tea.KeyMsg) Section {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return Section(s[0] - '1')
}

// pageEntries is the number of selectable entries on the current page.
func (m *Showcase) pageEntries() int {
	switch m.section {
	case SectionPerformance:
		return len(m.performance.Projects())
	case SectionServices:
		return len(m.services.Items)
	}
	return 0
}

func (m *Showcase) selectEntry(idx int) {
	n := m.pageEntries()
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	if idx == m.page.selected {
		return
	}
	m.page.selected = idx
	m.renderPage()
}

// renderPage re-renders the current page document, keeping the scroll
// position.
func (m *Showcase) renderPage() {
	if m.page == nil {
		return
	}
	var md string
	switch m.section {
	case SectionPerformance:
		md = PerformanceMarkdown(m.performance, m.page.selected)
	case SectionStore:
		md = StoreMarkdown(m.store)
	case SectionServices:
		md = ServicesMarkdown(m.services, m.page.selected, m.page.open)
	}
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	offset := m.page.viewport.YOffset
	m.page.viewport = m.newViewport(width, m.listHeight())
	m.page.viewport.SetContent(m.renderMarkdown(md, width))
	m.page.viewport.SetYOffset(offset)
}

// Category is the active filter.
func (m *Showcase) Category() content.Category { return content.Categories[m.category] }

// Works are the works shown under the active filter.
func (m *Showcase) Works() []content.Work { return m.works }

// Items are the title components, parallel to Works.
func (m *Showcase) Items() []*ScrambleText { return m.items }

// Header is the scrambling heading.
func (m *Showcase) Header() *ScrambleText { return m.header }

// Cursor is the focused item index.
func (m *Showcase) Cursor() int { return m.cursor }

// ModalOpen reports whether a work is being viewed.
func (m *Showcase) ModalOpen() bool { return m.modal != nil }

// ModalTitle is the open modal's title component, or nil.
func (m *Showcase) ModalTitle() *ScrambleText {
	if m.modal == nil {
		return nil
	}
	return m.modal.title
}

// rebuildItems replaces the title components for the current filter and
// focuses the cursor item.
func (m *Showcase) rebuildItems() tea.Cmd {
	m.closeItems()
	m.works = content.Filter(m.portfolio.Works, m.Category().ID)
	m.items = make([]*ScrambleText, 0, len(m.works))
	m.hovered = -1

	cmds := make([]tea.Cmd, 0, len(m.works))
	for _, w := range m.works {
		item := NewScrambleText(w.Title, m.opts.Binding, m.styles, m.opts.EffectOptions...)
		m.items = append(m.items, item)
		cmds = append(cmds, item.Init())
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
	if item := m.current(); item != nil {
		item.Focus()
	}
	return tea.Batch(cmds...)
}

func (m *Showcase) closeItems() {
	for _, item := range m.items {
		item.Close()
	}
	m.items = nil
}

func (m *Showcase) current() *ScrambleText {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor]
}

func (m *Showcase) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *Showcase) setCursor(idx int) {
	if len(m.items) == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.items) {
		idx = len(m.items) - 1
	}
	if idx == m.cursor {
		return
	}
	if prev := m.current(); prev != nil && m.cursor != m.hovered {
		prev.Blur()
	}
	m.cursor = idx
	m.items[idx].Focus()
	m.clampOffset()
}

func (m *Showcase) listHeight() int {
	h := m.height - listTop - footerRows
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Showcase) clampOffset() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Showcase) openModal() tea.Cmd {
	if m.cursor >= len(m.works) {
		return nil
	}
	m.closeModal()
	work := m.works[m.cursor]
	title := NewScrambleText(work.Title, scramble.Binding{
		EnableOnHover: m.opts.Binding.EnableOnHover,
		AutoStart:     m.opts.Binding.AutoStart,
		Class:         TagTitle,
	}, m.styles, m.opts.EffectOptions...)
	m.modal = &modal{
		work:     work,
		title:    title,
		markdown: WorkMarkdown(work),
	}
	m.renderModalBody()
	logging.UI("work opened", "id", work.ID, "title", work.Title)
	return title.Init()
}

func (m *Showcase) closeModal() {
	if m.modal == nil {
		return
	}
	m.modal.title.Close()
	m.modal = nil
}

func (m *Showcase) modalWidth() int {
	w := m.width - 8
	if w > 80 {
		w = 80
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Showcase) renderModalBody() {
	// Inside the modal's horizontal padding.
	width := m.modalWidth() - 4
	height := m.height - 10
	if height < 3 {
		height = 3
	}
	m.modal.viewport = m.newViewport(width, height)
	m.modal.viewport.SetContent(m.renderMarkdown(m.modal.markdown, width))
}

// renderMarkdown renders md in the configured glamour style, falling back
// to the raw text.
func (m *Showcase) renderMarkdown(md string, width int) string {
	style := m.opts.MarkdownStyle
	if style == "" {
		style = m.styles.MarkdownStyle()
	}
	body, err := RenderMarkdown(md, style, width)
	if err != nil {
		logging.Get(logging.CategoryUI).Warnw("markdown render failed", "error", err)
		return md
	}
	return body
}

// newViewport scrolls whole pages with the showcase's page keys and keeps
// half-page scrolling on u and d.
func (m *Showcase) newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.KeyMap.PageUp = m.keys.PageUp
	vp.KeyMap.PageDown = m.keys.PageDown
	vp.KeyMap.HalfPageUp.SetKeys("u")
	vp.KeyMap.HalfPageDown.SetKeys("d")
	return vp
}

// View renders the gallery or the open modal.
func (m *Showcase) View() string {
	if m.modal != nil {
		return m.viewModal()
	}
	if m.page != nil {
		return m.viewPage()
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.header.View()))
	b.WriteString("\n")
	b.WriteString(m.viewSections(fmt.Sprintf("%d works · %s", len(m.portfolio.Works), m.portfolio.Source)))
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n")
	b.WriteString(m.styles.RenderDivider(m.width))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(m.styles.Muted.Render("  No works in this category."))
		b.WriteString("\n")
	}
	end := m.offset + m.listHeight()
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.viewItem(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	m.writeStatus(&b)
	b.WriteString(m.help.ShortHelpView(m.keys.galleryHelp()))
	return b.String()
}

func (m *Showcase) writeStatus(b *strings.Builder) {
	if m.status == "" {
		return
	}
	style := m.styles.Muted
	if m.failed {
		style = m.styles.Error
	}
	b.WriteString(style.Render("  " + m.status))
	b.WriteString("\n")
}

const sectionSeparator = " · "

// viewSections is the section bar followed by a muted note.
func (m *Showcase) viewSections(note string) string {
	labels := make([]string, 0, len(Sections))
	for _, sec := range Sections {
		labels = append(labels, m.renderSection(sec))
	}
	bar := strings.Join(labels, m.styles.Muted.Render(sectionSeparator))
	return bar + m.styles.Footer.Render(note)
}

func (m *Showcase) renderSection(sec Section) string {
	label := fmt.Sprintf("%d %s", int(sec)+1, sec.Label())
	if sec == m.section {
		return m.styles.Accent.Render(label)
	}
	return m.styles.Muted.Render(label)
}

func (m *Showcase) viewPage() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.header.View()))
	b.WriteString("\n")
	b.WriteString(m.viewSections(m.pageNote()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.RenderDivider(m.width))
	b.WriteString("\n")
	b.WriteString(m.page.viewport.View())
	b.WriteString("\n\n")
	m.writeStatus(&b)
	b.WriteString(m.help.ShortHelpView(m.keys.pageHelp()))
	return b.String()
}

func (m *Showcase) pageNote() string {
	switch m.section {
	case SectionPerformance:
		return fmt.Sprintf("%d projects · %s", len(m.performance.Projects()), m.performance.Source)
	case SectionStore:
		return fmt.Sprintf("%d releases · %s", len(m.store.Releases), m.store.Source)
	case SectionServices:
		return fmt.Sprintf("%d services · %s", len(m.services.Items), m.services.Source)
	}
	return ""
}

func (m *Showcase) viewTabs() string {
	tabs := make([]string, 0, len(content.Categories))
	for i, c := range content.Categories {
		tabs = append(tabs, m.renderTab(i, c))
	}
	return strings.Join(tabs, " ")
}

func (m *Showcase) renderTab(i int, c content.Category) string {
	if i == m.category {
		return m.styles.ActiveTab.Render(c.Label)
	}
	return m.styles.Tab.Render(c.Label)
}

func (m *Showcase) viewItem(i int) string {
	w := m.works[i]
	line := m.items[i].View()
	if meta := workMeta(w); meta != "" {
		line += m.styles.Muted.Render(" · " + meta)
	}
	if i == m.cursor {
		return m.styles.Selected.Render(line)
	}
	return m.styles.Item.Render(line)
}

func (m *Showcase) viewModal() string {
	var b strings.Builder
	b.WriteString(m.modal.title.View())
	b.WriteString("\n")
	if meta := workMeta(m.modal.work); meta != "" {
		b.WriteString(m.styles.Muted.Render(meta))
		b.WriteString("\n")
	}
	if badges := m.tagBadges(m.modal.work); badges != "" {
		b.WriteString(badges)
		b.WriteString("\n")
	}
	b.WriteString(m.modal.viewport.View())
	box := m.styles.Modal.Width(m.modalWidth()).Render(b.String())
	return box + "\n" + m.help.ShortHelpView(m.keys.modalHelp())
}

func (m *Showcase) tagBadges(w content.Work) string {
	badges := make([]string, len(w.Tags))
	for i, t := range w.Tags {
		badges[i] = m.styles.Badge.Render(t)
	}
	return strings.Join(badges, " ")
}

func workMeta(w content.Work) string {
	parts := make([]string, 0, 3)
	if w.Artist != "" {
		parts = append(parts, w.Artist)
	}
	if w.Year != 0 {
		parts = append(parts, fmt.Sprint(w.Year))
	}
	if w.Role != "" {
		parts = append(parts, w.Role)
	}
	return strings.Join(parts, " · ")
}
