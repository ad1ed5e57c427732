package output

import "gopkg.in/yaml.v3"

// YAMLFormatter serializes the report view as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string      { return "yaml" }
func (y YAMLFormatter) Extension() string { return "yaml" }

func (y YAMLFormatter) Format(report *Report) ([]byte, error) {
	v, err := report.view()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}
