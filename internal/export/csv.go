// Package export serializes a batch of posts to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/alkime/postgen/internal/content"
	"github.com/alkime/postgen/pkg/collections"
)

// ContentType is the MIME type of the export.
const ContentType = "text/csv"

// Header is the first CSV row.
var Header = []string{"Date & Time", "Content"}

var htmlTagRe = regexp.MustCompile(`<[^<]+?>`)

// Clean removes HTML tags and "**" emphasis markers.
func Clean(s string) string {
	return strings.ReplaceAll(htmlTagRe.ReplaceAllString(s, ""), "**", "")
}

// Row builds the CSV record of one post: its timestamp, then the cleaned
// content with the hashtags appended after a space.
func Row(p content.Post) []string {
	return []string{
		p.Date + " " + p.Time,
		strings.TrimSpace(Clean(p.Content) + " " + p.Hashtags),
	}
}

// WriteCSV writes the header and one CRLF-terminated row per post.
func WriteCSV(w io.Writer, posts []content.Post) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	if err := cw.WriteAll(collections.Apply(posts, Row)); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}

	return nil
}

// Filename names a download generated at t.
func Filename(t time.Time) string {
	return "social_media_posts_" + t.Format("20060102_150405") + ".csv"
}
