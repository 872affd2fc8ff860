package webdriver

import (
	"errors"
	"fmt"
	"time"

	"github.com/tebeka/selenium"
)

// Waiter polls a condition until it holds or the timeout elapses.
// selenium.WebDriver implements it.
type Waiter interface {
	WaitWithTimeoutAndInterval(condition selenium.Condition, timeout, interval time.Duration) error
}

// ValueCondition is a selenium.Condition that also produces a value once it
// is satisfied, e.g. the element that became visible.
type ValueCondition[T any] func(wd selenium.WebDriver) (value T, done bool, err error)

// TimeoutError is returned by WaitFor when the condition did not hold
// within the timeout.
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("condition not met within %v: %v", e.Timeout, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err comes from a bounded wait running out.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// WaitFor evaluates cond every interval until it is done, returning its
// value. An error from cond stops the wait and is returned unchanged;
// running out of time yields a *TimeoutError.
func WaitFor[T any](w Waiter, timeout, interval time.Duration, cond ValueCondition[T]) (T, error) {
	var (
		value   T
		condErr error
	)
	err := w.WaitWithTimeoutAndInterval(func(wd selenium.WebDriver) (bool, error) {
		v, done, err := cond(wd)
		if err != nil {
			condErr = err
			return false, err
		}
		if done {
			value = v
		}
		return done, nil
	}, timeout, interval)
	if err != nil {
		var zero T
		if condErr != nil {
			return zero, condErr
		}
		return zero, &TimeoutError{Timeout: timeout, Err: err}
	}
	return value, nil
}

// Await runs WaitFor with the session's wait policy.
func Await[T any](s *Session, cond ValueCondition[T]) (T, error) {
	return WaitFor(s.WebDriver, s.Timeout, s.Interval, cond)
}

// Wait is the boolean form of Await.
func (s *Session) Wait(cond selenium.Condition) error {
	_, err := Await(s, func(wd selenium.WebDriver) (struct{}, bool, error) {
		done, err := cond(wd)
		return struct{}{}, done, err
	})
	return err
}
