package webdriver

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/tebeka/selenium"
	"github.com/web-platform-tests/playground/shared"
)

// Session is one browser session, used by exactly one case. It embeds the
// selenium.WebDriver it wraps, so cases drive the browser through it
// directly.
type Session struct {
	selenium.WebDriver

	// App resolves page paths to URLs.
	App AppServer
	// Timeout and Interval are the wait policy used by Await and Wait.
	Timeout  time.Duration
	Interval time.Duration

	log shared.Logger

	once       sync.Once
	mu         sync.Mutex
	released   int
	releaseErr error
}

func newSession(wd selenium.WebDriver, app AppServer, logger shared.Logger) *Session {
	if logger == nil {
		logger = shared.NewNilLogger()
	}
	logger.Infof("Opened session %s", wd.SessionID())
	return &Session{
		WebDriver: wd,
		App:       app,
		Timeout:   *waitTimeout,
		Interval:  *waitInterval,
		log:       logger,
	}
}

// Open navigates the session to page on the app server.
func (s *Session) Open(page string) error {
	url := s.App.GetWebappURL(page)
	s.log.Debugf("Navigating to %s", url)
	if err := s.Get(url); err != nil {
		return fmt.Errorf("loading %s: %w", url, err)
	}
	return nil
}

// Release ends the browser session. Only the first call quits the browser;
// every call returns the first call's result.
func (s *Session) Release() error {
	s.once.Do(func() {
		id := s.SessionID()
		err := s.Quit()
		s.mu.Lock()
		defer s.mu.Unlock()
		s.released++
		if err != nil {
			s.releaseErr = fmt.Errorf("quitting session %s: %w", id, err)
			s.log.Errorf("Failed to release session %s: %s", id, err.Error())
			return
		}
		s.log.Infof("Released session %s", id)
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releaseErr
}

// Released reports how many times the session was released (0 or 1).
func (s *Session) Released() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// SaveArtifacts writes a screenshot and the page source of the current page
// to store under prefix. A nil store saves nothing.
func (s *Session) SaveArtifacts(ctx context.Context, store shared.ArtifactStore, prefix string) error {
	if store == nil {
		return nil
	}
	var errs []error
	save := func(name, contentType string, data []byte) {
		where, err := store.Save(ctx, path.Join(prefix, name), contentType, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("saving %s: %w", name, err))
			return
		}
		s.log.Infof("Saved %s to %s", name, where)
	}

	if shot, err := s.Screenshot(); err != nil {
		errs = append(errs, fmt.Errorf("taking screenshot: %w", err))
	} else {
		save("screenshot.png", "image/png", shot)
	}
	if source, err := s.PageSource(); err != nil {
		errs = append(errs, fmt.Errorf("reading page source: %w", err))
	} else {
		save("page.html", "text/html; charset=utf-8", []byte(source))
	}
	return shared.NewMultiError(errs, "saving artifacts of "+prefix)
}
