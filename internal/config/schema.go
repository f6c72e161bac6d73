package config

import "github.com/invopop/jsonschema"

// Schema returns the JSON Schema describing .ai-switch.json, for editor
// integration and the `config schema` command.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	s := r.Reflect(&Config{})
	s.Title = FileName
	s.Description = "Project configuration for the ai-switch launcher."
	if p, ok := s.Properties.Get("defaultTool"); ok {
		p.Description = "Tool launched when none is named on the command line."
	}
	if p, ok := s.Properties.Get("defaultFlags"); ok {
		p.Description = "Flags inserted before the pass-through arguments."
	}
	return s
}
