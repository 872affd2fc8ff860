// Copyright 2018 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sharedtest

import (
	"context"
	"strings"

	"github.com/tebeka/selenium"
	"github.com/web-platform-tests/playground/shared"
)

// NewTestContext creates a new context.Context for small tests.
func NewTestContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, shared.DefaultLoggerCtxKey(), shared.NewNilLogger())
	return ctx
}

// DriverError builds the W3C error a WebDriver server reports for code.
func DriverError(code string) error {
	return &selenium.Error{Err: code, Message: code}
}

// FakeWebDriver is an in-memory selenium.WebDriver for small tests. Only the
// methods the suite's helpers call are implemented; any other call panics on
// the nil embedded interface.
type FakeWebDriver struct {
	selenium.WebDriver

	// Elements maps a selector value to the elements it matches.
	Elements map[string][]selenium.WebElement
	// Alert is the text of the open alert, if any.
	Alert *string

	URLs       []string
	Quits      int
	QuitErr    error
	Source     string
	Shot       []byte
	ScreenErr  error
	FindErrFor map[string]error
}

func (d *FakeWebDriver) Get(url string) error {
	d.URLs = append(d.URLs, url)
	return nil
}

func (d *FakeWebDriver) FindElement(by, value string) (selenium.WebElement, error) {
	if err := d.FindErrFor[value]; err != nil {
		return nil, err
	}
	if es := d.Elements[value]; len(es) > 0 {
		return es[0], nil
	}
	return nil, DriverError("no such element")
}

func (d *FakeWebDriver) FindElements(by, value string) ([]selenium.WebElement, error) {
	if err := d.FindErrFor[value]; err != nil {
		return nil, err
	}
	return d.Elements[value], nil
}

func (d *FakeWebDriver) AlertText() (string, error) {
	if d.Alert == nil {
		return "", DriverError("no such alert")
	}
	return *d.Alert, nil
}

func (d *FakeWebDriver) Quit() error {
	d.Quits++
	return d.QuitErr
}

func (d *FakeWebDriver) SessionID() string {
	return "fake-session"
}

func (d *FakeWebDriver) PageSource() (string, error) {
	return d.Source, nil
}

func (d *FakeWebDriver) Screenshot() ([]byte, error) {
	return d.Shot, d.ScreenErr
}

// FakeWebElement is an in-memory selenium.WebElement for small tests.
type FakeWebElement struct {
	selenium.WebElement

	Displayed    bool
	DisplayedErr error
	Attrs        map[string]string
	Content      string
}

func (e *FakeWebElement) IsDisplayed() (bool, error) {
	return e.Displayed, e.DisplayedErr
}

func (e *FakeWebElement) GetAttribute(name string) (string, error) {
	v, ok := e.Attrs[name]
	if !ok {
		return "", DriverError("nil return value")
	}
	return v, nil
}

func (e *FakeWebElement) Text() (string, error) {
	return strings.TrimSpace(e.Content), nil
}
