package components

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeTable_TruncatesLongCellTextWithEllipsis(t *testing.T) {
	rendered := stripANSI(VolumeTable([][]string{
		{"local", strings.Repeat("v", 40), "1", "", "/m", "1B"},
	}))

	assert.Contains(t, rendered, strings.Repeat("v", 23)+"...")
	assert.NotContains(t, rendered, strings.Repeat("v", 27))
}

func TestVolumeTable_MaxWidthNarrowsMountPoint(t *testing.T) {
	rows := [][]string{{"local", "a", "2", "web", "/var/lib/docker/volumes/a/_data", "1GB"}}

	assert.Contains(t, stripANSI(VolumeTable(rows)), "/var/lib/docker/volumes/a/_data")

	narrow := stripANSI(VolumeTable(rows, WithMaxWidth(80)))
	assert.Contains(t, narrow, "/var/li...")
	assert.NotContains(t, narrow, "_data")
}

func TestFitColumns(t *testing.T) {
	assert.Equal(t, VolumeColumns, fitColumns(VolumeColumns, 0))
	assert.Equal(t, VolumeColumns, fitColumns(VolumeColumns, 500))

	fitted := fitColumns(VolumeColumns, 110)
	assert.Equal(t, 26, fitted[mountColumn].Width)
	assert.Equal(t, 40, VolumeColumns[mountColumn].Width, "input is not mutated")

	assert.Equal(t, minMountWidth, fitColumns(VolumeColumns, 20)[mountColumn].Width)
}

func TestVolumeTable_RendersHeadersAndRowsInOrder(t *testing.T) {
	rendered := stripANSI(VolumeTable([][]string{
		{"local", "a", "2", "web", "/var/lib/docker/volumes/a/_data", "1GB"},
		{"local", "b", "0", "", "/var/lib/docker/volumes/b/_data", "10MB"},
	}, WithSelectedRow(1)))

	for _, col := range VolumeColumns {
		assert.Contains(t, rendered, col.Title)
	}
	posA := strings.Index(rendered, "/volumes/a/")
	posB := strings.Index(rendered, "/volumes/b/")
	require.NotEqual(t, -1, posA)
	require.NotEqual(t, -1, posB)
	assert.Less(t, posA, posB)
}

func TestTruncateCell_LeavesShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "abc", truncateCell("abc", 5))
}

func TestTruncateCell_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		maxWidth int
		expected string
	}{
		{name: "zero width passthrough", value: "abcdef", maxWidth: 0, expected: "abcdef"},
		{name: "width three all dots", value: "abcdef", maxWidth: 3, expected: "..."},
		{name: "ascii truncates", value: "abcdef", maxWidth: 5, expected: "ab..."},
		{name: "cjk truncates by display width", value: "数据卷备份", maxWidth: 5, expected: "数..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateCell(tt.value, tt.maxWidth)
			assert.Equal(t, tt.expected, got)
			if tt.maxWidth > 0 {
				assert.LessOrEqual(t, runewidth.StringWidth(got), tt.maxWidth)
			}
		})
	}
}

func TestTruncateCell_AnsiInputPassthrough(t *testing.T) {
	styled := "\x1b[32mactive\x1b[0m"
	got := truncateCell(styled, 3)
	assert.Equal(t, styled, got)
	assert.Contains(t, got, "\x1b[")
}

func TestToast_View(t *testing.T) {
	assert.Contains(t, stripANSI(Toast{Kind: ToastSuccess, Message: "Volume data1 exported to /tmp"}.View()),
		"Volume data1 exported to /tmp")
	assert.Contains(t, stripANSI(Toast{Kind: ToastKind(42), Message: "x"}.View()), "x")

	out := stripANSI(RenderToasts([]Toast{{Kind: ToastError, Message: "first"}, {Kind: ToastInfo, Message: "second"}}))
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func stripANSI(input string) string {
	ansiPattern := regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	return ansiPattern.ReplaceAllString(input, "")
}
