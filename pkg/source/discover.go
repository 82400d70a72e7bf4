// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxSearchDepth bounds the directory levels FindFile descends below each root.
const maxSearchDepth = 8

var ErrRequestFileNotFound = errors.New("request file not found")

// FindFile searches each root breadth first for a regular file called name, compared case-insensitively.
// Roots are tried in order and the first hit wins. Symlinked directories are not followed.
func FindFile(name string, roots ...string) (string, bool) {
	for _, root := range roots {
		if path, ok := findInRoot(root, name); ok {
			return path, true
		}
	}
	return "", false
}

func findInRoot(root string, name string) (string, bool) {
	type queued struct {
		dir   string
		depth int
	}

	queue := []queued{{dir: root}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(current.dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && strings.EqualFold(entry.Name(), name) {
				return filepath.Join(current.dir, entry.Name()), true
			}
			if entry.IsDir() && current.depth < maxSearchDepth {
				queue = append(queue, queued{dir: filepath.Join(current.dir, entry.Name()), depth: current.depth + 1})
			}
		}
	}
	return "", false
}

// Resolve returns path when it names an existing regular file. Otherwise it looks for a file with the
// same base name (or defaultName when path is empty) under the working directory, then the home directory.
func Resolve(path string, defaultName string) (string, error) {
	if path != "" {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	target := defaultName
	if path != "" {
		target = filepath.Base(path)
	}

	roots := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, home)
	}
	if found, ok := FindFile(target, roots...); ok {
		return found, nil
	}
	return "", fmt.Errorf("%w: %s", ErrRequestFileNotFound, target)
}
