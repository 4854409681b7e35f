// Package testutil holds in-memory stores and timing helpers shared by tests.
package testutil

import (
	"fmt"
	"testing"
	"time"
)

// TestTimer วัดเวลาของ test หนึ่งตัว
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{start: time.Now(), name: name}
}

// Stop returns the elapsed time and prints it.
func (t *TestTimer) Stop() time.Duration {
	duration := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, duration)
	return duration
}

// PerformanceAssertion fails the test when duration exceeds maxDuration.
func PerformanceAssertion(t *testing.T, testName string, duration, maxDuration time.Duration) {
	t.Helper()
	if duration > maxDuration {
		t.Errorf("❌ %s took %v, expected less than %v", testName, duration, maxDuration)
	}
}

// TestResult ผลลัพธ์ของ test หนึ่งตัว
type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
	Error    error
}

// TestSuiteResult สรุปผลของ test หลายตัว
type TestSuiteResult struct {
	SuiteName   string
	TotalTests  int
	PassedTests int
	FailedTests int
	TotalTime   time.Duration
	Results     []TestResult
}

func NewTestSuiteResult(suiteName string) *TestSuiteResult {
	return &TestSuiteResult{SuiteName: suiteName}
}

// Track runs as a subtest of t and records its outcome in the suite.
func (s *TestSuiteResult) Track(t *testing.T, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		timer := NewTestTimer(name)
		defer func() {
			s.AddResult(TestResult{Name: name, Duration: timer.Stop(), Passed: !t.Failed()})
		}()
		fn(t)
	})
}

func (s *TestSuiteResult) AddResult(result TestResult) {
	s.Results = append(s.Results, result)
	s.TotalTests++
	s.TotalTime += result.Duration
	if result.Passed {
		s.PassedTests++
	} else {
		s.FailedTests++
	}
}

func (s *TestSuiteResult) PrintSummary() {
	fmt.Printf("\n📊 Test Suite Summary: %s\n", s.SuiteName)
	fmt.Printf("   Total Tests: %d\n", s.TotalTests)
	fmt.Printf("   Passed: %d ✅\n", s.PassedTests)
	fmt.Printf("   Failed: %d ❌\n", s.FailedTests)
	fmt.Printf("   Total Time: %v\n", s.TotalTime)
	for _, r := range s.Results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, r.Name, r.Duration)
	}
	fmt.Println()
}
