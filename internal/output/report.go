package output

import (
	"io"
)

// GenerateReport renders report with the named formatter and writes it to w.
// Unknown names return an error wrapping ErrUnsupportedFormat.
func GenerateReport(w io.Writer, report *Report, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return nil
}

// SaveReport renders report to a file and returns the path written.
func SaveReport(report *Report, format, filename string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, filename)
}
