// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"strings"

	mapset "github.com/deckarep/golang-set"
)

// A list of browsers the suite can drive.
// (Must be sorted alphabetically!)
var supportedBrowsers = []string{
	"chrome", "firefox",
}

var allBrowsers mapset.Set

func init() {
	allBrowsers = mapset.NewSet()
	for _, b := range supportedBrowsers {
		allBrowsers.Add(b)
	}
}

// GetBrowserNames returns an alphabetically-ordered array of the names
// of the browsers which the suite can drive.
func GetBrowserNames() []string {
	// Slice to make source immutable
	tmp := make([]string, len(supportedBrowsers))
	copy(tmp, supportedBrowsers)
	return tmp
}

// IsBrowserName determines whether the given name string is a valid browser name.
// Used for validating the --browser flag.
func IsBrowserName(name string) bool {
	return allBrowsers.Contains(strings.ToLower(name))
}

// ClassSet splits an HTML class attribute into its set of class tokens.
func ClassSet(class string) mapset.Set {
	set := mapset.NewSet()
	for _, token := range strings.Fields(class) {
		set.Add(token)
	}
	return set
}

// ToStringSlice converts a set to a typed string slice.
func ToStringSlice(set mapset.Set) []string {
	if set == nil {
		return nil
	}
	slice := set.ToSlice()
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = item.(string)
	}
	return result
}
