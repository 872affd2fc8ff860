package webdriver

import (
	"errors"
	"strings"

	"github.com/tebeka/selenium"
)

// W3C WebDriver error codes.
// https://www.w3.org/TR/webdriver/#errors
const (
	codeClickIntercepted = "element click intercepted"
	codeNoSuchElement    = "no such element"
	codeStaleElement     = "stale element reference"
	codeNoSuchAlert      = "no such alert"
)

// Messages legacy (non-W3C) servers use for the same conditions.
var legacyMessages = map[string][]string{
	codeClickIntercepted: {"Other element would receive the click"},
	codeNoSuchElement:    {"Unable to locate element"},
	codeStaleElement:     {"element is not attached to the page document"},
	codeNoSuchAlert:      {"no alert open"},
}

func hasErrorCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var se *selenium.Error
	if errors.As(err, &se) && se.Err == code {
		return true
	}
	msg := err.Error()
	if strings.Contains(msg, code) {
		return true
	}
	for _, legacy := range legacyMessages[code] {
		if strings.Contains(msg, legacy) {
			return true
		}
	}
	return false
}

// IsClickIntercepted reports whether a click failed because another element
// covers the target.
func IsClickIntercepted(err error) bool {
	return hasErrorCode(err, codeClickIntercepted)
}

// IsNoSuchElement reports whether a lookup matched nothing.
func IsNoSuchElement(err error) bool {
	return hasErrorCode(err, codeNoSuchElement)
}

// IsStaleElement reports whether an element was detached from the DOM after
// it was found.
func IsStaleElement(err error) bool {
	return hasErrorCode(err, codeStaleElement)
}

// IsNoSuchAlert reports whether no alert was open.
func IsNoSuchAlert(err error) bool {
	return hasErrorCode(err, codeNoSuchAlert)
}
