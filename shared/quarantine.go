// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Quarantine matches case names against a list of glob patterns, for cases
// whose outcome depends on timing of the page under test.
type Quarantine struct {
	patterns []string
	globs    []glob.Glob
}

// NewQuarantine compiles the given glob patterns.
func NewQuarantine(patterns []string) (*Quarantine, error) {
	q := &Quarantine{patterns: patterns}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid quarantine pattern %q: %w", p, err)
		}
		q.globs = append(q.globs, g)
	}
	return q, nil
}

// Match returns the first pattern matching name, if any.
func (q *Quarantine) Match(name string) (string, bool) {
	if q == nil {
		return "", false
	}
	for i, g := range q.globs {
		if g.Match(name) {
			return q.patterns[i], true
		}
	}
	return "", false
}
