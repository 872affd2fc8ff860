package webdriver

import (
	"flag"
	"path/filepath"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

var (
	chromeDriverPath = flag.String("chromedriver_path", "chromedriver", "Path to the chromedriver binary")
	chromePath       = flag.String("chrome_path", "", "Path to the chrome binary; the driver's default if empty")
)

// ChromeDriver starts up a Chrome WebDriver server.
func ChromeDriver() (*Driver, error) {
	caps, err := chromeCapabilities()
	if err != nil {
		return nil, err
	}
	return startDriver(caps, func(port int, options []selenium.ServiceOption) (*selenium.Service, string, error) {
		if *seleniumPath != "" {
			// Specify the path to ChromeDriver in order to use Chrome.
			options = append(options, selenium.ChromeDriver(*chromeDriverPath))
			s, err := selenium.NewSeleniumService(*seleniumPath, port, options...)
			return s, "/wd/hub", err
		}
		// chromedriver serves the protocol at the root unless --url-base is set.
		s, err := selenium.NewChromeDriverService(*chromeDriverPath, port, options...)
		return s, "", err
	})
}

func chromeCapabilities() (selenium.Capabilities, error) {
	seleniumCapabilities := selenium.Capabilities{
		"browserName": "chrome",
	}

	chromeCapabilities := chrome.Capabilities{
		// Report W3C error codes, e.g. "element click intercepted".
		W3C: true,
		Args: []string{
			// The sandbox requires a setuid binary, which containers rarely have.
			"--no-sandbox",
			"--window-size=1280,800",
		},
	}
	if *headless {
		chromeCapabilities.Args = append(chromeCapabilities.Args, "--headless")
	}
	if *chromePath != "" {
		chromeAbsPath, err := filepath.Abs(*chromePath)
		if err != nil {
			return nil, err
		}
		chromeCapabilities.Path = chromeAbsPath
	}
	seleniumCapabilities.AddChrome(chromeCapabilities)
	return seleniumCapabilities, nil
}
