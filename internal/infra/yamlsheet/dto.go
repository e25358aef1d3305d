package yamlsheet

import "gopkg.in/yaml.v3"

// Scalars such as `years: 30` are kept as yaml.Node so the raw text reaches
// the calculator unchanged.

type yamlWorksheet struct {
	Name    string               `yaml:"name"`
	Vars    map[string]yaml.Node `yaml:"vars"`
	Entries []yamlEntry          `yaml:"entries"`
}

type yamlEntry struct {
	Name       string               `yaml:"name"`
	Calculator string               `yaml:"calculator"`
	Inputs     map[string]yaml.Node `yaml:"inputs"`

	Assert  yamlAssertions    `yaml:"assert"`
	Extract map[string]string `yaml:"extract"`
}

type yamlAssertions struct {
	Error    string                           `yaml:"error"`
	JSONPath map[string]yamlJSONPathAssertion `yaml:"jsonpath"`
}

type yamlJSONPathAssertion struct {
	Exists    bool     `yaml:"exists"`
	Eq        *string  `yaml:"eq"`
	Contains  *string  `yaml:"contains"`
	Matches   *string  `yaml:"matches"`
	Gt        *float64 `yaml:"gt"`
	Lt        *float64 `yaml:"lt"`
	Approx    *float64 `yaml:"approx"`
	Tolerance float64  `yaml:"tolerance"`
}
