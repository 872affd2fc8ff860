// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/web-platform-tests/playground/playground"
)

var (
	port      = flag.Int("port", 8080, "Port to listen on")
	ajaxDelay = flag.Duration("ajax_delay", 2*time.Second, "How long /ajaxdata takes to respond")
	loadDelay = flag.Duration("load_delay", time.Second, "How long /loaddelay takes to respond")
	verbose   = flag.Bool("verbose", false, "Log every request")
)

func main() {
	flag.Parse()
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	handler := playground.NewRouter(playground.Options{
		AJAXDelay: *ajaxDelay,
		LoadDelay: *loadDelay,
	})
	addr := fmt.Sprintf(":%d", *port)
	logrus.Infof("Listening on port %d", *port)
	logrus.Fatal(http.ListenAndServe(addr, handler))
}
