package output

import (
	"encoding/json"
)

// JSONFormatter serializes the report view as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	v, err := report.view()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(v, "", "  ")
}
