package webdriver

import (
	"fmt"
	"strconv"

	mapset "github.com/deckarep/golang-set"
	"github.com/tebeka/selenium"
	"github.com/web-platform-tests/playground/shared"
)

// PresenceOfElementLocated is satisfied by the first element matching the
// selector. A missing element means "not yet".
func PresenceOfElementLocated(by, value string) ValueCondition[selenium.WebElement] {
	return func(wd selenium.WebDriver) (selenium.WebElement, bool, error) {
		e, err := wd.FindElement(by, value)
		if IsNoSuchElement(err) {
			return nil, false, nil
		} else if err != nil {
			return nil, false, err
		}
		return e, true, nil
	}
}

// VisibilityOfElementLocated is satisfied by the first element matching the
// selector once it is displayed. Missing and stale elements mean "not yet".
func VisibilityOfElementLocated(by, value string) ValueCondition[selenium.WebElement] {
	present := PresenceOfElementLocated(by, value)
	return func(wd selenium.WebDriver) (selenium.WebElement, bool, error) {
		e, found, err := present(wd)
		if err != nil || !found {
			return nil, false, err
		}
		displayed, err := e.IsDisplayed()
		if IsStaleElement(err) {
			return nil, false, nil
		} else if err != nil {
			return nil, false, err
		}
		return e, displayed, nil
	}
}

// TextToBe is satisfied once the first element matching the selector has
// exactly the given text. Missing and stale elements mean "not yet".
func TextToBe(by, value, text string) selenium.Condition {
	return func(wd selenium.WebDriver) (bool, error) {
		e, err := wd.FindElement(by, value)
		if IsNoSuchElement(err) {
			return false, nil
		} else if err != nil {
			return false, err
		}
		got, err := e.Text()
		if IsStaleElement(err) {
			return false, nil
		} else if err != nil {
			return false, err
		}
		return got == text, nil
	}
}

// AlertIsPresent is satisfied by the text of an open alert.
func AlertIsPresent() ValueCondition[string] {
	return func(wd selenium.WebDriver) (string, bool, error) {
		text, err := wd.AlertText()
		if IsNoSuchAlert(err) {
			return "", false, nil
		} else if err != nil {
			return "", false, err
		}
		return text, true, nil
	}
}

// AttributeAtLeast is satisfied once the integer attribute name of e reaches
// threshold. A non-integer attribute is an error.
func AttributeAtLeast(e selenium.WebElement, name string, threshold int) ValueCondition[int] {
	return func(selenium.WebDriver) (int, bool, error) {
		n, err := IntAttribute(e, name)
		if err != nil {
			return 0, false, err
		}
		return n, n >= threshold, nil
	}
}

// IntAttribute reads attribute name of e as an integer.
func IntAttribute(e selenium.WebElement, name string) (int, error) {
	v, err := e.GetAttribute(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("attribute %s=%q is not an integer: %w", name, v, err)
	}
	return n, nil
}

// ClassTokens returns the set of classes on e.
func ClassTokens(e selenium.WebElement) (mapset.Set, error) {
	class, err := e.GetAttribute("class")
	if err != nil {
		return nil, err
	}
	return shared.ClassSet(class), nil
}

// ElementDisplayed reports whether the first element matching the selector
// is displayed. An element that is no longer in the DOM is not displayed.
func ElementDisplayed(wd selenium.WebDriver, by, value string) (bool, error) {
	elements, err := wd.FindElements(by, value)
	if err != nil {
		return false, err
	}
	if len(elements) == 0 {
		return false, nil
	}
	return elements[0].IsDisplayed()
}
