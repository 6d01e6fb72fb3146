package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/bookhunt/internal/books"
)

const descriptionWidth = 96

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254"))

	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("248"))
)

func writeJSON(w io.Writer, results []books.Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeYAML(w io.Writer, results []books.Book) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	return enc.Encode(results)
}

func writeText(w io.Writer, query string, results []books.Book) error {
	if len(results) == 0 {
		_, err := fmt.Fprintf(w, "No results for %q\n", query)
		return err
	}

	header := headerStyle.Render(fmt.Sprintf("%d results for: %s", len(results), query))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for i, book := range results {
		if _, err := fmt.Fprintln(w, renderBook(i+1, book)); err != nil {
			return err
		}
	}
	return nil
}

func renderBook(rank int, book books.Book) string {
	var lines []string

	title := book.Title
	if book.SeriesName != "" {
		if book.SeriesPosition > 0 {
			title = fmt.Sprintf("%s (%s #%g)", title, book.SeriesName, book.SeriesPosition)
		} else {
			title = fmt.Sprintf("%s (%s)", title, book.SeriesName)
		}
	}
	lines = append(lines, titleStyle.Render(fmt.Sprintf("%d. %s", rank, title)))

	if len(book.Authors) > 0 {
		lines = append(lines, authorStyle.Render("   by "+strings.Join(book.Authors, ", ")))
	}

	var meta []string
	for _, source := range book.Sources {
		meta = append(meta, string(source))
	}
	if book.ISBN13 != "" {
		meta = append(meta, "ISBN "+book.ISBN13)
	}
	if book.PageCount > 0 {
		meta = append(meta, fmt.Sprintf("%d pages", book.PageCount))
	}
	if book.PublishedDate != "" {
		meta = append(meta, book.PublishedDate)
	}
	lines = append(lines, sourceStyle.Render("   "+strings.Join(meta, " | ")))

	if tags := renderTags(book); tags != "" {
		lines = append(lines, tagStyle.Render("   "+tags))
	}

	if book.Description != "" {
		lines = append(lines, descriptionStyle.Render("   "+truncate(book.Description, descriptionWidth)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTags(book books.Book) string {
	var parts []string
	if len(book.Genres) > 0 {
		parts = append(parts, strings.Join(book.Genres, ", "))
	}
	if len(book.Tropes) > 0 {
		parts = append(parts, "tropes: "+strings.Join(book.Tropes, ", "))
	}
	if len(book.Moods) > 0 {
		parts = append(parts, "moods: "+strings.Join(book.Moods, ", "))
	}
	if len(book.ContentWarnings) > 0 {
		parts = append(parts, "warnings: "+strings.Join(book.ContentWarnings, ", "))
	}
	return strings.Join(parts, " | ")
}

// truncate shortens value to width runes, so a multibyte character never
// gets split mid-sequence.
func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if width <= 0 || len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
