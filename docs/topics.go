// Package docs holds the pcharts documentation topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the topic listing every other topic.
const Index = "readme"

// Topic returns the markdown content of a documentation topic.
func Topic(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics returns the content of several topics, one after the other.
// "*" stands for every topic but the index.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			all, err := All()
			if err != nil {
				return "", err
			}
			expanded = all
		}
		for _, n := range expanded {
			content, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// All returns the sorted names of every topic but the index.
func All() ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if e.IsDir() || name == Index {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
