package data

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// toolFields is the number of columns every catalog record must carry.
const toolFields = 7

//go:embed tools.csv
var defaultToolsCSV []byte

// ErrToolNotFound is returned when a tool code has no entry in the catalog.
var ErrToolNotFound = errors.New("tool not found")

// ParseError reports a malformed catalog record. Loading stops at the first one.
type ParseError struct {
	Line int   // 1-indexed line of the offending record
	Err  error // what was wrong with it
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Catalog is an immutable code -> Tool mapping. It is safe for concurrent reads.
type Catalog struct {
	tools map[string]Tool
}

// NewCatalog builds a catalog from typed tools. Codes are normalized to
// upper case and a later tool replaces an earlier one with the same code.
func NewCatalog(tools ...Tool) *Catalog {
	c := &Catalog{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		t.Code = NormalizeCode(t.Code)
		c.tools[t.Code] = t
	}
	return c
}

// DefaultCatalog returns the catalog shipped with the binary.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(defaultToolsCSV))
	if err != nil {
		panic(fmt.Sprintf("embedded tools.csv: %v", err))
	}
	return c
}

// LoadCatalogFile reads a catalog from the CSV file at path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// LoadCatalog parses comma-separated tool records, one per line, with no
// header row:
//
//	code,type,brand,dailyCharge,weekdayCharge,weekendCharge,holidayCharge
//
// The charge flags are "yes" or "no". Blank lines are skipped. The first
// malformed record aborts the load with a *ParseError.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked by parseTool
	cr.TrimLeadingSpace = true

	var tools []Tool
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.Line, Err: csvErr.Err}
			}
			return nil, fmt.Errorf("read catalog: %w", err)
		}

		line, _ := cr.FieldPos(0)
		tool, err := parseTool(record)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		tools = append(tools, tool)
	}

	return NewCatalog(tools...), nil
}

func parseTool(record []string) (Tool, error) {
	if len(record) != toolFields {
		return Tool{}, fmt.Errorf("expected %d fields, got %d", toolFields, len(record))
	}

	charge, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return Tool{}, fmt.Errorf("daily charge %q: %w", record[3], err)
	}
	if err := ValidateDailyCharge(charge); err != nil {
		return Tool{}, fmt.Errorf("daily charge %q %w", record[3], err)
	}

	return Tool{
		Code:          NormalizeCode(record[0]),
		Type:          strings.TrimSpace(record[1]),
		Brand:         strings.TrimSpace(record[2]),
		DailyCharge:   charge,
		WeekdayCharge: parseFlag(record[4]),
		WeekendCharge: parseFlag(record[5]),
		HolidayCharge: parseFlag(record[6]),
	}, nil
}

// Lookup returns the tool for code, ignoring case.
func (c *Catalog) Lookup(code string) (Tool, error) {
	if t, ok := c.tools[NormalizeCode(code)]; ok {
		return t, nil
	}
	return Tool{}, fmt.Errorf("%w: %q", ErrToolNotFound, code)
}

// Tools returns every tool ordered by code.
func (c *Catalog) Tools() []Tool {
	tools := make([]Tool, 0, len(c.tools))
	for _, t := range c.tools {
		tools = append(tools, t)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Code < tools[j].Code })
	return tools
}

// Len returns the number of tools in the catalog.
func (c *Catalog) Len() int { return len(c.tools) }
