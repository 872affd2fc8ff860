package webdriver

import (
	"flag"
	"path/filepath"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/firefox"
)

var (
	geckoDriverPath = flag.String("geckodriver_path", "geckodriver", "Path to the geckodriver binary")
	firefoxPath     = flag.String("firefox_path", "", "Path to the firefox binary; the driver's default if empty")
)

// FirefoxDriver starts up a Firefox WebDriver server.
func FirefoxDriver() (*Driver, error) {
	caps, err := firefoxCapabilities()
	if err != nil {
		return nil, err
	}
	return startDriver(caps, func(port int, options []selenium.ServiceOption) (*selenium.Service, string, error) {
		if *seleniumPath != "" {
			// Selenium Server does not support specifying the geckodriver path
			// at runtime, so it goes on the server's command line.
			options = append(options, selenium.GeckoDriver(*geckoDriverPath))
			s, err := selenium.NewSeleniumService(*seleniumPath, port, options...)
			return s, "/wd/hub", err
		}
		s, err := selenium.NewGeckoDriverService(*geckoDriverPath, port, options...)
		return s, "", err
	})
}

func firefoxCapabilities() (selenium.Capabilities, error) {
	seleniumCapabilities := selenium.Capabilities{
		"browserName": "firefox",
	}

	firefoxCapabilities := firefox.Capabilities{}
	if *headless {
		firefoxCapabilities.Args = append(firefoxCapabilities.Args, "-headless")
	}
	if *firefoxPath != "" {
		firefoxAbsPath, err := filepath.Abs(*firefoxPath)
		if err != nil {
			return nil, err
		}
		firefoxCapabilities.Binary = firefoxAbsPath
	}
	seleniumCapabilities.AddFirefox(firefoxCapabilities)
	return seleniumCapabilities, nil
}
