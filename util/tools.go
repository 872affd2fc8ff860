//go:build tools

package util

import (
	// Import the tools used by go:generate and CI in order to track them in
	// go.mod as recommended by
	// https://github.com/golang/go/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module
	_ "go.uber.org/mock/mockgen"
	_ "golang.org/x/lint/golint"
)
