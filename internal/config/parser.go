package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatch/internal/token"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadPalette reads a palette file from disk, validates it, and returns the resulting palette.
func LoadPalette(path string) (*token.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatcherrors.NewParseError(path, 0, err)
	}
	return ParsePalette(data, path)
}

// ParsePalette decodes palette YAML. label names the source in errors.
// A file with "base: default" is layered over the built-in palette;
// otherwise it must define every token in both schemes.
func ParsePalette(data []byte, label string) (*token.Palette, error) {
	var file PaletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, swatcherrors.NewParseError(label, extractLine(err), err)
	}

	if err := ValidatePaletteFile(&file); err != nil {
		return nil, err
	}

	light := make(map[token.Name]token.Value, len(file.Tokens))
	dark := make(map[token.Name]token.Value, len(file.Tokens))
	for key, entry := range file.Tokens {
		name, _ := token.ParseName(key)
		light[name] = entry.Light.Value
		dark[name] = entry.Dark.Value
	}

	palette := token.NewPalette(file.Name, light, dark)
	if file.Base == token.DefaultPaletteName {
		palette = token.Default().Merge(file.Name, palette)
	}

	if err := palette.Validate(token.Names()); err != nil {
		return nil, err
	}

	return palette, nil
}

// MarshalPalette encodes palette in the format ParsePalette reads.
func MarshalPalette(palette *token.Palette) ([]byte, error) {
	file := PaletteFile{
		Name:   palette.Name(),
		Tokens: make(map[string]*TokenEntry),
	}
	for _, name := range palette.Entries(token.Light) {
		light, err := palette.Lookup(name, token.Light)
		if err != nil {
			return nil, err
		}
		dark, err := palette.Lookup(name, token.Dark)
		if err != nil {
			return nil, err
		}
		file.Tokens[name.String()] = &TokenEntry{Light: &TokenValue{light}, Dark: &TokenValue{dark}}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(orderedPaletteFile(file)); err != nil {
		return nil, fmt.Errorf("encode palette: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode palette: %w", err)
	}
	return buf.Bytes(), nil
}

// orderedPaletteFile builds a YAML node that lists tokens in declaration
// order; map encoding would sort them alphabetically.
func orderedPaletteFile(file PaletteFile) *yaml.Node {
	tokens := &yaml.Node{Kind: yaml.MappingNode}

	keys := make([]string, 0, len(file.Tokens))
	for key := range file.Tokens {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := token.ParseName(keys[i])
		b, _ := token.ParseName(keys[j])
		return a < b
	})

	for _, key := range keys {
		var value yaml.Node
		_ = value.Encode(file.Tokens[key])
		value.Style = yaml.FlowStyle
		tokens.Content = append(tokens.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, &value)
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "name"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: file.Name},
			{Kind: yaml.ScalarNode, Value: "tokens"},
			tokens,
		},
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
