package main

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/decker502/sparks"

// TestTerminalViewerDoesNotLinkEbiten tests that the terminal viewer builds
// without a window system: no package it reaches may import ebiten.
func TestTerminalViewerDoesNotLinkEbiten(t *testing.T) {
	visited := make(map[string]bool)
	var walk func(importPath, dir string)
	walk = func(importPath, dir string) {
		if visited[importPath] {
			return
		}
		visited[importPath] = true

		pkg, err := build.Default.ImportDir(dir, 0)
		if err != nil {
			t.Fatalf("Failed to read package %s: %v", importPath, err)
		}
		for _, imp := range pkg.Imports {
			if strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten") {
				t.Errorf("%s imports %s", importPath, imp)
			}
			if rel, ok := strings.CutPrefix(imp, modulePath+"/"); ok {
				walk(imp, filepath.Join("..", "..", filepath.FromSlash(rel)))
			}
		}
	}
	walk(modulePath+"/cmd/termparticles", ".")

	for _, want := range []string{
		modulePath + "/pkg/render/term",
		modulePath + "/pkg/systems",
		modulePath + "/pkg/utils",
	} {
		if !visited[want] {
			t.Errorf("Expected %s to be reachable from the terminal viewer", want)
		}
	}
}
