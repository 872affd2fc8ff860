// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package playground

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/web-platform-tests/playground/shared"
)

// AJAXData is the body /ajaxdata responds with.
const AJAXData = "Data loaded with AJAX get request."

// Options tunes the replica's artificial delays.
type Options struct {
	// AJAXDelay is how long /ajaxdata takes to respond. Zero means 2s.
	AJAXDelay time.Duration
	// LoadDelay is how long /loaddelay takes to respond. Zero means 1s.
	LoadDelay time.Duration
	// AccessLog receives one line per request. Nil logs through logrus at
	// debug level.
	AccessLog io.Writer
}

func (o Options) withDefaults() Options {
	if o.AJAXDelay == 0 {
		o.AJAXDelay = 2 * time.Second
	}
	if o.LoadDelay == 0 {
		o.LoadDelay = time.Second
	}
	if o.AccessLog == nil {
		o.AccessLog = logrusWriter{logrus.StandardLogger()}
	}
	return o
}

// logrusWriter logs each write as one debug entry.
type logrusWriter struct {
	logger logrus.FieldLogger
}

func (w logrusWriter) Write(p []byte) (int, error) {
	w.logger.Debug(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Pages lists the paths of the replicated playground pages.
var Pages = []string{
	"/sampleapp",
	"/dynamicid",
	"/classattr",
	"/hiddenlayers",
	"/loaddelay",
	"/ajax",
	"/textinput",
	"/scrollbars",
	"/overlapped",
	"/visibility",
	"/click",
	"/progressbar",
	"/mouseover",
	"/shadowdom",
}

// NewRouter returns the handler serving the playground replica.
func NewRouter(opts Options) http.Handler {
	opts = opts.withDefaults()

	r := mux.NewRouter()
	r.StrictSlash(true)

	r.HandleFunc("/", pageHandler("index.html", func(*http.Request) interface{} { return Pages })).
		Name("index")
	for _, page := range Pages {
		name := page[1:]
		var handler http.HandlerFunc
		switch name {
		case "dynamicid":
			handler = pageHandler("dynamicid.html", func(*http.Request) interface{} {
				return uuid.NewString()
			})
		case "loaddelay":
			handler = delayed(opts.LoadDelay, pageHandler("loaddelay.html", nil))
		default:
			handler = pageHandler(name+".html", nil)
		}
		r.HandleFunc(page, handler).Methods(http.MethodGet).Name(name)
	}
	r.HandleFunc("/ajaxdata", delayed(opts.AJAXDelay, ajaxDataHandler)).
		Methods(http.MethodGet).Name("ajaxdata")
	r.PathPrefix("/static/").Handler(http.FileServer(http.FS(staticFiles))).Name("static")

	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(
		handlers.LoggingHandler(opts.AccessLog, r))
}

func ajaxDataHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, AJAXData); err != nil {
		shared.GetLogger(r.Context()).Warningf("Failed to write ajax data: %s", err.Error())
	}
}

// delayed holds the response back for d, or until the client goes away.
func delayed(d time.Duration, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			h(w, r)
		case <-r.Context().Done():
		}
	}
}
