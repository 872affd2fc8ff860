// Copyright 2020 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package playground

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/web-platform-tests/playground/shared"
)

// templates contains all of the page templates parsed from pages/*, created
// once at startup. Use RenderTemplate to render responses.
var templates = template.Must(template.New("all.html").ParseFS(pageFiles, "pages/*.html"))

//go:embed pages/*.html
var pageFiles embed.FS

//go:embed static
var staticFiles embed.FS

// RenderTemplate renders a page template to a response. If an error is
// encountered, a 500 is written instead; do not write additional data to the
// response after calling this function.
func RenderTemplate(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		shared.GetLogger(r.Context()).Errorf("Failed to render %s: %s", name, err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		shared.GetLogger(r.Context()).Warningf("Failed to write %s: %s", name, err.Error())
	}
}

func pageHandler(name string, data func(*http.Request) interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d interface{}
		if data != nil {
			d = data(r)
		}
		RenderTemplate(w, r, name, d)
	}
}
