// package formatter provides functions to export show listings and trivia questions to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/fyyur/internal/projection"
	"github.com/desertthunder/fyyur/internal/shared"
)

// Format names an export format.
type Format string

const (
	CSV      Format = "csv"
	Markdown Format = "markdown"
	Text     Format = "txt"
)

// ParseFormat accepts csv, markdown (or md) and txt (or text).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "markdown", "md":
		return Markdown, nil
	case "txt", "text":
		return Text, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want csv, markdown or txt)", shared.ErrInvalidFlag, s)
	}
}

// Extension is the file extension used for the format, without the dot.
func (f Format) Extension() string {
	if f == Markdown {
		return "md"
	}
	return string(f)
}

const timeLayout = "2006-01-02 15:04 MST"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func writeCSV(headers []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ShowsToCSV converts show listings to CSV with columns: Start, Venue ID, Venue, Artist ID, Artist
func ShowsToCSV(shows []projection.ShowListing) ([]byte, error) {
	records := make([][]string, 0, len(shows))
	for _, s := range shows {
		records = append(records, []string{
			s.StartTime.UTC().Format(time.RFC3339),
			strconv.FormatInt(s.VenueID, 10),
			s.VenueName,
			strconv.FormatInt(s.ArtistID, 10),
			s.ArtistName,
		})
	}
	return writeCSV([]string{"Start", "Venue ID", "Venue", "Artist ID", "Artist"}, records)
}

// ShowsToMarkdown renders show listings as a Markdown table.
func ShowsToMarkdown(shows []projection.ShowListing) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Shows\n\n")
	buf.WriteString(fmt.Sprintf("**Shows**: %d\n\n", len(shows)))

	if len(shows) == 0 {
		return buf.Bytes(), nil
	}

	buf.WriteString("| Start | Venue | Artist |\n")
	buf.WriteString("|---|---|---|\n")
	for _, s := range shows {
		buf.WriteString(fmt.Sprintf("| %s | %s | %s |\n", formatTime(s.StartTime), escapeCell(s.VenueName), escapeCell(s.ArtistName)))
	}

	return buf.Bytes(), nil
}

// ShowsToText renders show listings as numbered plain text lines.
func ShowsToText(shows []projection.ShowListing) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Shows: %d\n\n", len(shows)))
	for i, s := range shows {
		buf.WriteString(fmt.Sprintf("%d. %s - %s at %s\n", i+1, formatTime(s.StartTime), s.ArtistName, s.VenueName))
	}

	return buf.Bytes(), nil
}

// QuestionsToCSV converts questions to CSV with columns: ID, Category, Difficulty, Question, Answer
func QuestionsToCSV(questions []projection.Question, categories projection.Categories) ([]byte, error) {
	records := make([][]string, 0, len(questions))
	for _, q := range questions {
		records = append(records, []string{
			strconv.FormatInt(q.ID, 10),
			categoryLabel(categories, q.Category),
			strconv.Itoa(q.Difficulty),
			q.Question,
			q.Answer,
		})
	}
	return writeCSV([]string{"ID", "Category", "Difficulty", "Question", "Answer"}, records)
}

// QuestionsToMarkdown renders questions grouped under a heading per category, in input order.
func QuestionsToMarkdown(questions []projection.Question, categories projection.Categories) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Trivia Questions\n\n")
	buf.WriteString(fmt.Sprintf("**Questions**: %d\n", len(questions)))

	var order []int64
	groups := make(map[int64][]projection.Question)
	for _, q := range questions {
		if _, ok := groups[q.Category]; !ok {
			order = append(order, q.Category)
		}
		groups[q.Category] = append(groups[q.Category], q)
	}

	for _, id := range order {
		buf.WriteString(fmt.Sprintf("\n## %s\n\n", categoryLabel(categories, id)))
		for i, q := range groups[id] {
			buf.WriteString(fmt.Sprintf("%d. %s **%s** (difficulty %d)\n", i+1, q.Question, q.Answer, q.Difficulty))
		}
	}

	return buf.Bytes(), nil
}

// QuestionsToText renders questions as numbered plain text lines.
func QuestionsToText(questions []projection.Question, categories projection.Categories) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Questions: %d\n\n", len(questions)))
	for i, q := range questions {
		buf.WriteString(fmt.Sprintf("%d. [%s] %s - %s\n", i+1, categoryLabel(categories, q.Category), q.Question, q.Answer))
	}

	return buf.Bytes(), nil
}

// Shows dispatches to the show exporter for format.
func Shows(format Format, shows []projection.ShowListing) ([]byte, error) {
	switch format {
	case CSV:
		return ShowsToCSV(shows)
	case Markdown:
		return ShowsToMarkdown(shows)
	case Text:
		return ShowsToText(shows)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// Questions dispatches to the question exporter for format.
func Questions(format Format, questions []projection.Question, categories projection.Categories) ([]byte, error) {
	switch format {
	case CSV:
		return QuestionsToCSV(questions, categories)
	case Markdown:
		return QuestionsToMarkdown(questions, categories)
	case Text:
		return QuestionsToText(questions, categories)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// WriteExport writes data to path, defaulting to {name}.{ext} in the working directory.
func WriteExport(data []byte, path, name string, format Format) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s.%s", name, format.Extension())
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func categoryLabel(categories projection.Categories, id int64) string {
	if label, ok := categories[id]; ok {
		return label
	}
	return fmt.Sprintf("Category %d", id)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
