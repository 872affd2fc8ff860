//go:build large

package webdriver

import (
	"context"
	"flag"
	"path"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"github.com/tebeka/selenium"
	"github.com/web-platform-tests/playground/shared"
)

var (
	configPath         = flag.String("config", "", "Path to a YAML suite config (quarantine, local replica delays), e.g. testdata/public_site.yaml")
	artifactsDir       = flag.String("artifacts_dir", "", "Directory to write screenshots and page sources of failed cases to")
	artifactsBucket    = flag.String("artifacts_bucket", "", "GCS bucket to write screenshots and page sources of failed cases to")
	gcpCredentialsFile = flag.String("gcp_credentials_file", "", "Path to Google Cloud Platform credentials file, if necessary")
)

// basePage is where every session starts.
const basePage = "/sampleapp"

type PlaygroundSuite struct {
	suite.Suite

	app        AppServer
	driver     *Driver
	store      shared.ArtifactStore
	quarantine *shared.Quarantine
	runID      string

	s *Session
}

func TestPlayground(t *testing.T) {
	suite.Run(t, new(PlaygroundSuite))
}

func (p *PlaygroundSuite) SetupSuite() {
	require := p.Require()
	p.runID = uuid.NewString()

	cfg, err := shared.LoadSuiteConfig(*configPath)
	require.Nil(err)
	p.quarantine, err = shared.NewQuarantine(cfg.Quarantine)
	require.Nil(err)

	p.store, err = shared.NewArtifactStore(context.Background(), *artifactsDir, *artifactsBucket, *gcpCredentialsFile)
	require.Nil(err)

	p.app, err = NewWebserver(cfg)
	require.Nil(err)
	p.driver, err = GetDriver()
	require.Nil(err)
	logrus.Infof("Starting run %s against %s", p.runID, p.app.GetWebappURL("/"))
}

func (p *PlaygroundSuite) TearDownSuite() {
	var errs []error
	if p.driver != nil {
		errs = append(errs, p.driver.Stop())
	}
	if p.app != nil {
		errs = append(errs, p.app.Close())
	}
	if p.store != nil {
		errs = append(errs, p.store.Close())
	}
	p.Nil(shared.NewMultiError(errs, "tearing down the playground suite"))
}

func (p *PlaygroundSuite) caseName() string {
	name := p.T().Name()
	return name[strings.LastIndex(name, "/")+1:]
}

func (p *PlaygroundSuite) SetupTest() {
	p.s = nil
	name := p.caseName()
	if pattern, ok := p.quarantine.Match(name); ok {
		p.T().Skipf("%s is quarantined by %q", name, pattern)
	}

	logger := shared.NewLogrusLogger(logrus.Fields{"run": p.runID, "case": name})
	s, err := p.driver.NewSession(p.app, logger)
	p.Require().Nil(err)
	p.s = s
	p.Require().Nil(p.s.Open(basePage))
}

func (p *PlaygroundSuite) TearDownTest() {
	if p.s == nil {
		return
	}
	if p.T().Failed() {
		ctx := shared.WithLogger(context.Background(), p.s.log)
		if err := p.s.SaveArtifacts(ctx, p.store, path.Join(p.runID, p.caseName())); err != nil {
			p.s.log.Warningf("Failed to save artifacts: %s", err.Error())
		}
	}
	p.Nil(p.s.Release())
	p.Equal(1, p.s.Released())
}

func (p *PlaygroundSuite) open(page string) {
	p.Require().Nil(p.s.Open(page))
}

func (p *PlaygroundSuite) find(selector string) selenium.WebElement {
	e, err := p.s.FindElement(selenium.ByCSSSelector, selector)
	p.Require().Nil(err, "finding %s", selector)
	return e
}

func (p *PlaygroundSuite) text(selector string) string {
	text, err := p.find(selector).Text()
	p.Require().Nil(err)
	return text
}

// visibleText waits for the element to be displayed, then reads its text.
func (p *PlaygroundSuite) visibleText(selector string) string {
	e, err := Await(p.s, VisibilityOfElementLocated(selenium.ByCSSSelector, selector))
	p.Require().Nil(err, "waiting for %s", selector)
	text, err := e.Text()
	p.Require().Nil(err)
	return text
}

func (p *PlaygroundSuite) scrollIntoView(e selenium.WebElement) {
	_, err := p.s.ExecuteScript("arguments[0].scrollIntoView(true);", []interface{}{e})
	p.Require().Nil(err)
}

func (p *PlaygroundSuite) login(user, password string) {
	p.Require().Nil(p.find("input[name=UserName]").SendKeys(user))
	p.Require().Nil(p.find("input[name=Password]").SendKeys(password))
	p.Require().Nil(p.find("#login").Click())
}

func (p *PlaygroundSuite) TestSampleAppLogin() {
	p.login("Evgeniy", "pwd")
	p.Equal("Welcome, Evgeniy!", p.visibleText("#loginstatus"))
}

func (p *PlaygroundSuite) TestSampleAppLogout() {
	p.login("Evgeniy", "pwd")
	p.Require().Equal("Welcome, Evgeniy!", p.visibleText("#loginstatus"))
	p.Require().Nil(p.find("#login").Click())
	p.Equal("User logged out.", p.visibleText("#loginstatus"))
}

func (p *PlaygroundSuite) TestDynamicIDClick() {
	p.open("/dynamicid")
	button := p.find("button.btn-primary")
	p.Nil(button.Click())
	p.Nil(button.Click())
}

func (p *PlaygroundSuite) TestClassAttributeAlert() {
	p.open("/classattr")
	p.Require().Nil(p.find("button.btn-primary").Click())
	text, err := Await(p.s, AlertIsPresent())
	p.Require().Nil(err)
	p.Contains(text, "Primary")
	p.Nil(p.s.AcceptAlert())
}

func (p *PlaygroundSuite) TestHiddenLayersSecondClick() {
	p.open("/hiddenlayers")
	green := p.find("#greenButton")
	p.Require().Nil(green.Click())
	err := green.Click()
	p.Require().NotNil(err, "second click on the green button should be intercepted")
	p.True(IsClickIntercepted(err), "unexpected error: %v", err)
}

func (p *PlaygroundSuite) TestLoadDelayButton() {
	p.open("/loaddelay")
	button, err := Await(p.s, VisibilityOfElementLocated(selenium.ByCSSSelector, "button.btn-primary"))
	p.Require().Nil(err)
	displayed, err := button.IsDisplayed()
	p.Nil(err)
	p.True(displayed)
}

func (p *PlaygroundSuite) TestAJAXDataLoaded() {
	p.open("/ajax")
	p.Require().Nil(p.find("#ajaxButton").Click())
	content, err := Await(p.s, VisibilityOfElementLocated(selenium.ByCSSSelector, ".bg-success"))
	p.Require().Nil(err)
	text, err := content.Text()
	p.Nil(err)
	p.Equal("Data loaded with AJAX get request.", text)
}

func (p *PlaygroundSuite) TestTextInputRename() {
	p.open("/textinput")
	p.Require().Nil(p.find("#newButtonName").SendKeys("Hello"))
	p.Require().Nil(p.find("#updatingButton").Click())
	p.Nil(p.s.Wait(TextToBe(selenium.ByCSSSelector, "#updatingButton", "Hello")))
	p.Equal("Hello", p.text("#updatingButton"))
}

func (p *PlaygroundSuite) TestScrollbarsClick() {
	p.open("/scrollbars")
	button := p.find("#hidingButton")
	p.scrollIntoView(button)
	p.Nil(button.Click())
	p.Nil(button.Click())
}

func (p *PlaygroundSuite) TestOverlappedInput() {
	p.open("/overlapped")
	name := p.find("#name")
	p.scrollIntoView(name)
	p.Require().Nil(name.SendKeys("abc"))
	// Geckodriver reports content attributes only, so read the live value.
	value, err := p.s.ExecuteScript("return arguments[0].value;", []interface{}{name})
	p.Require().Nil(err)
	p.Equal("abc", value)
}

func (p *PlaygroundSuite) TestVisibilityHidden() {
	p.open("/visibility")
	p.Require().Nil(p.find("#hideButton").Click())
	for _, id := range []string{"#removedButton", "#zeroWidthButton", "#invisibleButton", "#notdisplayedButton"} {
		displayed, err := ElementDisplayed(p.s, selenium.ByCSSSelector, id)
		p.Nil(err, id)
		p.False(displayed, "%s should not be displayed", id)
	}
}

func (p *PlaygroundSuite) TestClickSuccessClass() {
	p.open("/click")
	button := p.find("#badButton")
	p.Require().Nil(button.Click())
	classes, err := ClassTokens(button)
	p.Require().Nil(err)
	p.True(classes.Contains("btn-success"), "classes: %v", shared.ToStringSlice(classes))

	again, err := ClassTokens(button)
	p.Require().Nil(err)
	p.True(classes.Equal(again))
}

func (p *PlaygroundSuite) TestProgressBarStop() {
	p.open("/progressbar")
	p.Require().Nil(p.find("#startButton").Click())
	bar := p.find("#progressBar")
	_, err := Await(p.s, AttributeAtLeast(bar, "aria-valuenow", 75))
	p.Require().Nil(err)
	p.Require().Nil(p.find("#stopButton").Click())
	value, err := IntAttribute(bar, "aria-valuenow")
	p.Require().Nil(err)
	p.GreaterOrEqual(value, 75)
}

func (p *PlaygroundSuite) TestMouseOverCounter() {
	p.open("/mouseover")
	for i := 0; i < 2; i++ {
		// The link is replaced on hover, so look it up for every click.
		link := p.find("a[title='Click me']")
		_, err := p.s.ExecuteScript("arguments[0].click();", []interface{}{link})
		p.Require().Nil(err)
	}
	p.Equal("2", p.text("#clickCount"))
}

func (p *PlaygroundSuite) TestShadowDOMText() {
	p.open("/shadowdom")
	host := p.find("my-paragraph")
	text, err := FindShadowText(p.s, host, "span")
	p.Require().Nil(err)
	p.NotEmpty(text)
}
