package formats

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ajxudir/qcfilter/pkg/cards"
	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/dom"
	"github.com/ajxudir/qcfilter/pkg/verbose"
)

// MaxSourceFileSize is the largest listing file Load will read (32 MB).
const MaxSourceFileSize = 32 << 20

// Load reads a listing file and returns a document ready for the controller.
//
// HTML files are parsed directly. Record files are parsed, narrowed to
// opts.Category, ordered and built into the standard listing markup.
//
// Parameters:
//   - path: The listing file
//   - cfg: Selector and group configuration used for generated markup
//   - opts: Category narrowing and ordering
//
// Returns:
//   - *dom.Document: The listing document
//   - error: When the file cannot be read, is too large or fails to parse
func Load(path string, cfg *config.Config, opts LoadOptions) (*dom.Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	content, err := readSource(path)
	if err != nil {
		return nil, err
	}

	if format == FormatHTML {
		doc, err := dom.Parse(bytes.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	}

	records, err := ParseRecords(format, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	records = Prepare(records, opts)
	verbose.Printf("Built %d cards from %s", len(records), path)
	return BuildDocument(records, cfg), nil
}

// ParseRecords parses record content of the given format.
func ParseRecords(format string, content []byte) ([]cards.Restaurant, error) {
	parser, err := GetRecordParser(format)
	if err != nil {
		return nil, err
	}
	return parser.Parse(content)
}

// Prepare narrows records to a category and orders them for publishing.
//
// Parameters:
//   - records: Parsed records; not modified
//   - opts: Category filter and ordering
//
// Returns:
//   - []cards.Restaurant: A new slice; by default stable-sorted by Score, highest first
func Prepare(records []cards.Restaurant, opts LoadOptions) []cards.Restaurant {
	want := normalizeCategory(opts.Category)
	out := make([]cards.Restaurant, 0, len(records))
	for _, r := range records {
		if want != "" && normalizeCategory(r.Category) != want {
			continue
		}
		out = append(out, r)
	}
	if !opts.KeepOrder {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Score() > out[j].Score()
		})
	}
	return out
}

// normalizeCategory makes "fast-food" and "Fast Food" compare equal.
func normalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "-", " ")))
}

func readSource(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxSourceFileSize {
		return nil, fmt.Errorf("%s is too large (%d bytes, max %d)", path, info.Size(), MaxSourceFileSize)
	}
	return os.ReadFile(path)
}
