package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown output format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Report is what a formatter renders. Exactly one field is set.
type Report struct {
	Assessment *domain.TaxAssessment
	Comparison *domain.RegimeComparison
	Slabs      *SlabTableView
	BreakEven  *calculation.BreakEvenResult
}

// AssessmentReport wraps a single-regime assessment
func AssessmentReport(a *domain.TaxAssessment) *Report { return &Report{Assessment: a} }

// ComparisonReport wraps a regime comparison
func ComparisonReport(c *domain.RegimeComparison) *Report { return &Report{Comparison: c} }

// SlabReport wraps a slab table listing
func SlabReport(s SlabTableView) *Report { return &Report{Slabs: &s} }

// BreakEvenReport wraps a break-even deduction search
func BreakEvenReport(b *calculation.BreakEvenResult) *Report { return &Report{BreakEven: b} }

// view returns the serializable shape of the report
func (r *Report) view() (any, error) {
	switch {
	case r == nil:
		return nil, fmt.Errorf("nothing to format")
	case r.Assessment != nil:
		return NewAssessmentView(r.Assessment), nil
	case r.Comparison != nil:
		return NewComparisonView(r.Comparison), nil
	case r.Slabs != nil:
		return *r.Slabs, nil
	case r.BreakEven != nil:
		return NewBreakEvenView(r.BreakEven), nil
	default:
		return nil, fmt.Errorf("nothing to format")
	}
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is saved.
	Extension() string
}

// WriteFormatted runs a formatter and writes output to filename. An empty
// filename gets a timestamped default in the working directory.
func WriteFormatted(f Formatter, report *Report, filename string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = fmt.Sprintf("tax_report_%s.%s", time.Now().Format("20060102_150405"), f.Extension())
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// LookupFormatter is GetFormatterByName with a descriptive error.
func LookupFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"json-pretty": "json",
	"yml":         "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
