package webdriver

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/phayes/freeport"
	"github.com/sirupsen/logrus"
	"github.com/web-platform-tests/playground/playground"
	"github.com/web-platform-tests/playground/shared"
)

var (
	local      = flag.Bool("local", false, "Serve a local replica of the playground instead of using the public site")
	localHost  = flag.String("local_host", "localhost", "Host name the browser uses to reach the local replica")
	remoteHost = flag.String("remote_host", "uitestingplayground.com", "Host of the public playground")
)

// AppServer is an abstraction for navigating an instance of the playground.
type AppServer interface {
	// Hook for closing the process that runs the webserver.
	io.Closer

	// GetWebappURL returns the URL for the given path on the running webapp.
	GetWebappURL(path string) string
}

type remoteAppServer struct {
	host string
}

func (i *remoteAppServer) GetWebappURL(path string) string {
	// The public playground is served over plain HTTP.
	return fmt.Sprintf("http://%s%s", i.host, path)
}

func (i *remoteAppServer) Close() error {
	return nil // Nothing needed here :)
}

type localAppServer struct {
	server *http.Server
	host   string
	port   int
	errc   chan error

	shutdownTimeout time.Duration
}

func (i *localAppServer) GetWebappURL(path string) string {
	return fmt.Sprintf("http://%s:%d%s", i.host, i.port, path)
}

func (i *localAppServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), i.shutdownTimeout)
	defer cancel()
	if err := i.server.Shutdown(ctx); err != nil {
		i.server.Close()
		return fmt.Errorf("shutting down local playground: %w", err)
	}
	return <-i.errc
}

// NewWebserver creates an AppServer instance, which may be backed by a local
// replica or the public site.
func NewWebserver(cfg *shared.SuiteConfig) (AppServer, error) {
	if !*local {
		return &remoteAppServer{
			host: *remoteHost,
		}, nil
	}
	return NewLocalAppServer(*localHost, playground.Options{
		AJAXDelay: cfg.Local.AJAXDelay,
		LoadDelay: cfg.Local.LoadDelay,
	})
}

// NewLocalAppServer serves the playground replica on a free port. The server
// accepts connections once this returns.
func NewLocalAppServer(host string, opts playground.Options) (AppServer, error) {
	port, err := freeport.GetFreePort()
	if err != nil {
		return nil, err
	}
	l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}

	i := &localAppServer{
		server:          &http.Server{Handler: playground.NewRouter(opts)},
		host:            host,
		port:            port,
		errc:            make(chan error, 1),
		shutdownTimeout: 15 * time.Second,
	}
	go func() {
		err := i.server.Serve(l)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		} else {
			logrus.Errorf("Local playground stopped serving: %s", err.Error())
		}
		i.errc <- err
	}()
	logrus.Infof("Serving local playground at %s", i.GetWebappURL("/"))
	return i, nil
}
