package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// readLabels reads integer class labels from path. JSON and YAML files hold
// a list; anything else holds one integer per line, with blank lines and
// "#" comments ignored.
func readLabels(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseLabels(filepath.Ext(path), data)
}

func parseLabels(ext string, data []byte) ([]int, error) {
	var ids []int

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &ids); err != nil {
			return nil, fmt.Errorf("parsing JSON labels: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ids); err != nil {
			return nil, fmt.Errorf("parsing YAML labels: %w", err)
		}
	default:
		sc := bufio.NewScanner(bytes.NewReader(data))
		line := 0
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if i := strings.IndexByte(text, '#'); i >= 0 {
				text = strings.TrimSpace(text[:i])
			}
			if text == "" {
				continue
			}
			id, err := strconv.Atoi(text)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ids = append(ids, id)
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}
