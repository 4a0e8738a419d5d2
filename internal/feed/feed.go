// Package feed loads the demo's ticker items from a YAML file.
package feed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Item is one ticker entry: the text to show and an optional color.
type Item struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color"`
}

// Feed is a named list of ticker items.
type Feed struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

// Load reads a feed from a YAML file.
func Load(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed %s: %w", path, err)
	}

	var f Feed
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", path, err)
	}
	if f.Title == "" {
		f.Title = "ticker"
	}
	return &f, nil
}

// Default returns the built-in sample feed. A couple of entries are much
// wider than any terminal, so the horizontal scroll always has work to do.
func Default() *Feed {
	return &Feed{
		Title: "wire",
		Items: []Item{
			{Text: "Welcome to the ticker demo", Color: "#FF8C00"},
			{Text: "Markets wobble as analysts discover that prices can, in fact, go both up and down — sometimes within the very same trading day, a development experts describe as \"broadly in line with how markets have always worked\"", Color: "#5FD7FF"},
			{Text: "Short one", Color: "#87FF5F"},
			{Text: "Local weather service confirms that the forecast remains a forecast: tomorrow will bring either sun, rain, wind, fog, or some previously unreviewed combination of all four, with temperatures somewhere between too cold and too warm", Color: "#FF5F87"},
			{Text: "That's all — it loops from here", Color: "#D7AFFF"},
		},
	}
}
