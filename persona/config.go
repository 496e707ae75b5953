package persona

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchema validates the run configuration shape before any
// extraction work starts. All three top-level fields are required and
// must be non-empty.
const configSchema = `{
	"type": "object",
	"required": ["persona", "job_to_be_done", "documents"],
	"properties": {
		"persona": {
			"type": "object",
			"required": ["role"],
			"properties": {
				"role": {"type": "string", "minLength": 1}
			}
		},
		"job_to_be_done": {
			"type": "object",
			"required": ["task"],
			"properties": {
				"task": {"type": "string", "minLength": 1}
			}
		},
		"documents": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["filename"],
				"properties": {
					"filename": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

// Config is the persona run configuration.
type Config struct {
	Persona struct {
		Role string `json:"role"`
	} `json:"persona"`

	JobToBeDone struct {
		Task string `json:"task"`
	} `json:"job_to_be_done"`

	Documents []DocumentRef `json:"documents"`
}

// DocumentRef names one input document.
type DocumentRef struct {
	Filename string `json:"filename"`
}

// LoadConfig reads and validates a run configuration file. Any missing
// or empty required field is a configuration error; the caller must
// abort the run without writing output.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig validates and decodes a run configuration document.
func ParseConfig(data []byte) (*Config, error) {
	schema, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config is not valid JSON: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Filenames returns the configured document filenames in order.
func (c *Config) Filenames() []string {
	names := make([]string, len(c.Documents))
	for i, doc := range c.Documents {
		names[i] = doc.Filename
	}
	return names
}

// Query builds the relevance query string from the persona and task.
func (c *Config) Query() string {
	return fmt.Sprintf("Persona: %s. Task: %s", c.Persona.Role, c.JobToBeDone.Task)
}
