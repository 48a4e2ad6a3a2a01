package views

// Menu is a clamped cursor over a fixed list of entries, paged when the
// list is taller than the view.
type Menu struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewMenu creates a menu over total entries with the given page size
func NewMenu(total, pageSize int) *Menu {
	if pageSize <= 0 {
		pageSize = total
	}
	m := &Menu{pageSize: max(pageSize, 1)}
	m.SetTotal(total)
	return m
}

// SetTotal sets the number of entries
func (m *Menu) SetTotal(total int) {
	m.totalItems = total
	if m.cursor >= total && total > 0 {
		m.cursor = total - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorInPage()
}

// SetPageSize changes how many entries are shown at once
func (m *Menu) SetPageSize(size int) {
	m.pageSize = max(size, 1)
	m.ensureCursorInPage()
}

// Cursor returns the selected entry index
func (m *Menu) Cursor() int {
	return m.cursor
}

// SetCursor moves the cursor, clamped to the entries
func (m *Menu) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= m.totalItems && m.totalItems > 0 {
		pos = m.totalItems - 1
	}
	m.cursor = pos
	m.ensureCursorInPage()
}

// CursorUp moves the cursor up by one
func (m *Menu) CursorUp() bool {
	if m.cursor > 0 {
		m.cursor--
		m.ensureCursorInPage()
		return true
	}
	return false
}

// CursorDown moves the cursor down by one
func (m *Menu) CursorDown() bool {
	if m.cursor < m.totalItems-1 {
		m.cursor++
		m.ensureCursorInPage()
		return true
	}
	return false
}

// VisibleRange returns the start and end indices of the shown page
func (m *Menu) VisibleRange() (start, end int) {
	start = m.pageOffset
	end = min(m.pageOffset+m.pageSize, m.totalItems)
	return
}

// Reset moves the cursor back to the first entry
func (m *Menu) Reset() {
	m.cursor = 0
	m.pageOffset = 0
}

func (m *Menu) ensureCursorInPage() {
	if m.cursor < m.pageOffset || m.cursor >= m.pageOffset+m.pageSize {
		m.pageOffset = (m.cursor / m.pageSize) * m.pageSize
	}
}
