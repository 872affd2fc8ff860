// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//go:generate mockgen -destination mock_webdriver/webdriver_mock.go github.com/web-platform-tests/playground/webdriver ScriptRunner,Waiter

package webdriver

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/phayes/freeport"
	"github.com/tebeka/selenium"
	"github.com/web-platform-tests/playground/shared"
)

var (
	browser          = flag.String("browser", "chrome", "Which browser to run the tests with")
	headless         = flag.Bool("headless", true, "Whether to run the browser without a window")
	startFrameBuffer = flag.Bool("frame_buffer", false, "Whether to use a frame buffer")
	seleniumPath     = flag.String("selenium_path", "", "Path to the selenium standalone jar; the browser's driver binary is run directly if empty")
	seleniumHost     = flag.String("selenium_host", "localhost", "Host to run selenium on")
	seleniumPort     = flag.Int("selenium_port", 0, "Port to run selenium on; 0 picks a free port")
	webdriverURL     = flag.String("webdriver_url", "", "URL of an already running WebDriver server, e.g. a Selenium grid")
	debug            = flag.Bool("debug", false, "Log WebDriver traffic and driver output to stderr")
	waitTimeout      = flag.Duration("wait_timeout", 5*time.Second, "How long bounded waits poll before failing")
	waitInterval     = flag.Duration("wait_interval", 500*time.Millisecond, "How often bounded waits poll")
)

// Driver is a WebDriver server (a driver binary, a Selenium standalone
// server, or a remote grid) plus the capabilities sessions are opened with.
type Driver struct {
	service *selenium.Service
	caps    selenium.Capabilities
	url     string
}

// GetDriver starts the WebDriver server selected by the --browser flag.
// Make sure to stop the returned Driver, e.g.
//
//	driver, err := GetDriver()
//	if err != nil {
//		return err
//	}
//	defer driver.Stop()
func GetDriver() (*Driver, error) {
	if !shared.IsBrowserName(*browser) {
		return nil, fmt.Errorf("invalid --browser value %q, want one of %v", *browser, shared.GetBrowserNames())
	}
	switch strings.ToLower(*browser) {
	case "firefox":
		return FirefoxDriver()
	default:
		return ChromeDriver()
	}
}

// serviceStarter launches a WebDriver server on port and returns the URL
// path prefix it serves the protocol under.
type serviceStarter func(port int, opts []selenium.ServiceOption) (*selenium.Service, string, error)

func startDriver(caps selenium.Capabilities, start serviceStarter) (*Driver, error) {
	if *webdriverURL != "" {
		return &Driver{caps: caps, url: *webdriverURL}, nil
	}

	port := *seleniumPort
	if port == 0 {
		var err error
		if port, err = freeport.GetFreePort(); err != nil {
			return nil, fmt.Errorf("picking a WebDriver port: %w", err)
		}
	}

	var options []selenium.ServiceOption
	// Start an X frame buffer for the browser to run in.
	if *startFrameBuffer {
		options = append(options, selenium.StartFrameBuffer())
	}
	if *debug {
		// Output debug information to STDERR.
		options = append(options, selenium.Output(os.Stderr))
		selenium.SetDebug(true)
	}

	service, prefix, err := start(port, options)
	if err != nil {
		return nil, fmt.Errorf("starting WebDriver server for %v: %w", caps["browserName"], err)
	}
	return &Driver{
		service: service,
		caps:    caps,
		url:     fmt.Sprintf("http://%s:%d%s", *seleniumHost, port, prefix),
	}, nil
}

// NewSession opens a fresh browser session whose pages are resolved against
// app. The caller owns the session and must Release it.
func (d *Driver) NewSession(app AppServer, logger shared.Logger) (*Session, error) {
	wd, err := selenium.NewRemote(d.caps, d.url)
	if err != nil {
		return nil, fmt.Errorf("opening %v session at %s: %w", d.caps["browserName"], d.url, err)
	}
	return newSession(wd, app, logger), nil
}

// Stop shuts down the WebDriver server, if this process started one.
func (d *Driver) Stop() error {
	if d.service == nil {
		return nil
	}
	return d.service.Stop()
}

// ScriptRunner is the part of selenium.WebDriver needed to run scripts that
// return elements.
type ScriptRunner interface {
	ExecuteScriptRaw(script string, args []interface{}) ([]byte, error)
	DecodeElements([]byte) ([]selenium.WebElement, error)
}

// FindShadowElements finds the shadow DOM children via the given query
// selectors, recursively.
// e.g. FindShadowElements(wd, foo, "bar", "baz") would be similar to
// A "foo bar baz" CSS selector, except it crosses the shadow boundaries for
// each separate selector.
func FindShadowElements(
	d ScriptRunner,
	e selenium.WebElement,
	selectors ...string) ([]selenium.WebElement, error) {
	elements := []selenium.WebElement{e}
	for _, selector := range selectors {
		interfaces := make([]interface{}, len(elements))
		for i, e := range elements {
			interfaces[i] = e
		}
		result, err := d.ExecuteScriptRaw(
			fmt.Sprintf(`return Array.from(arguments)
				.reduce((s, e) => {
					return s.concat(Array.from(e.shadowRoot.querySelectorAll('%s')))
				}, [])`,
				selector),
			interfaces)
		if err != nil {
			return nil, fmt.Errorf("querying shadow roots for %q: %w", selector, err)
		}
		elements, err = d.DecodeElements(result)
		if err != nil {
			return nil, err
		}
	}
	return elements, nil
}

// FindShadowElement returns the first element found by an equivalent call to
// FindShadowElements.
func FindShadowElement(
	d ScriptRunner,
	e selenium.WebElement,
	selectors ...string) (selenium.WebElement, error) {
	elements, err := FindShadowElements(d, e, selectors...)
	if err != nil || len(elements) < 1 {
		return nil, err
	}
	return elements[0], nil
}

// FindShadowText returns the text of the first element found by an
// equivalent call to FindShadowElements.
func FindShadowText(
	d ScriptRunner,
	e selenium.WebElement,
	selectors ...string) (string, error) {
	element, err := FindShadowElement(d, e, selectors...)
	if err != nil {
		return "", err
	}
	if element == nil {
		return "", fmt.Errorf("no shadow element matches %v", selectors)
	}
	return element.Text()
}
