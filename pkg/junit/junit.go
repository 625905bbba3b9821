// Package junit records workflow outcomes as JUnit test cases and writes
// the XML reports that CI result collectors pick up.
package junit

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimeNowFunc lets you specify the function for obtaining the current time.
// This is mainly to aid in testing.
var TimeNowFunc = time.Now

// Failure holds the failure detail of a test case.
type Failure struct {
	Message string `xml:"message,attr,omitempty"`
	Content string `xml:",chardata"`
}

// TestCase is a single test case record.
type TestCase struct {
	XMLName   xml.Name `xml:"testcase"`
	ClassName string   `xml:"classname,attr"`
	Name      string   `xml:"name,attr"`
	Time      float64  `xml:"time,attr"`
	Failure   *Failure `xml:"failure,omitempty"`
}

// NewTestCase returns a fresh, passing test case record.
func NewTestCase(className, name string) *TestCase {
	return &TestCase{ClassName: className, Name: name}
}

// Failed reports whether the test case has recorded a failure.
func (c *TestCase) Failed() bool { return c.Failure != nil }

// TestSuite is the root element of the report.
type TestSuite struct {
	XMLName  xml.Name    `xml:"testsuite"`
	Tests    int         `xml:"tests,attr"`
	Failures int         `xml:"failures,attr"`
	Time     float64     `xml:"time,attr"`
	Cases    []*TestCase `xml:"testcase"`
}

// Wrap runs the given function and records its duration and outcome into
// the test case. The error is returned unchanged so callers can still
// propagate it.
func Wrap(run func() error, testCase *TestCase) error {
	start := TimeNowFunc()
	err := run()
	testCase.Time = TimeNowFunc().Sub(start).Seconds()
	if err != nil {
		testCase.Failure = &Failure{
			Message: "Test failed",
			Content: err.Error(),
		}
	}
	return err
}

// CreateXMLFile writes the given test cases as a JUnit report, creating
// parent directories as needed.
func CreateXMLFile(testCases []*TestCase, path string) error {
	suite := TestSuite{
		Tests: len(testCases),
		Cases: testCases,
	}
	for _, c := range testCases {
		suite.Time += c.Time
		if c.Failed() {
			suite.Failures++
		}
	}

	out, err := xml.MarshalIndent(&suite, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling junit report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	data := append([]byte(xml.Header), out...)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing junit report: %w", err)
	}
	return nil
}
