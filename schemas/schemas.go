// Package schemas embeds the JSON Schema documents shipped with resume_checker.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Read returns the contents of the named schema file.
func Read(name string) (string, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
