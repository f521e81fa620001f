// Package inventory loads agent inventories from YAML or JSON files.
package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
)

// Format is the encoding of an inventory file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Inventory is the content of an inventory file. Project is optional.
type Inventory struct {
	Project          entities.Project         `yaml:"project" json:"project"`
	Agents           []entities.ChemicalAgent `yaml:"-" json:"-"`
	SelectedAgentIDs []string                 `yaml:"selected_agent_ids" json:"selected_agent_ids"`
}

type yamlInventory struct {
	Project          entities.Project `yaml:"project"`
	Agents           []yaml.Node      `yaml:"agents"`
	SelectedAgentIDs []string         `yaml:"selected_agent_ids"`
}

type jsonInventory struct {
	Project          entities.Project  `json:"project"`
	Agents           []json.RawMessage `json:"agents"`
	SelectedAgentIDs []string          `json:"selected_agent_ids"`
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported inventory file extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// Load reads and parses an inventory file
func Load(path string) (*Inventory, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %s: %w", path, err)
	}

	inv, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inventory %s: %w", path, err)
	}
	return inv, nil
}

// Parse decodes an inventory. Fields an agent omits keep the defaults of a
// new inventory row, and agents without an id get a generated one.
func Parse(data []byte, format Format) (*Inventory, error) {
	inv := &Inventory{}

	switch format {
	case FormatYAML:
		var raw yamlInventory
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		inv.Project = raw.Project
		inv.SelectedAgentIDs = raw.SelectedAgentIDs
		for i := range raw.Agents {
			agent := entities.NewChemicalAgent("")
			if err := raw.Agents[i].Decode(&agent); err != nil {
				return nil, fmt.Errorf("agent %d: %w", i+1, err)
			}
			inv.Agents = append(inv.Agents, agent)
		}
	case FormatJSON:
		var raw jsonInventory
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		inv.Project = raw.Project
		inv.SelectedAgentIDs = raw.SelectedAgentIDs
		for i, msg := range raw.Agents {
			agent := entities.NewChemicalAgent("")
			if err := json.Unmarshal(msg, &agent); err != nil {
				return nil, fmt.Errorf("agent %d: %w", i+1, err)
			}
			inv.Agents = append(inv.Agents, agent)
		}
	default:
		return nil, fmt.Errorf("unsupported inventory format %q", format)
	}

	if inv.Agents == nil {
		inv.Agents = []entities.ChemicalAgent{}
	}
	for i := range inv.Agents {
		inv.Agents[i].ID = strings.TrimSpace(inv.Agents[i].ID)
		if inv.Agents[i].ID == "" {
			inv.Agents[i].ID = uuid.NewString()
		}
	}
	return inv, nil
}
