/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package testingu

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

// CmdTestCase describes one CLI invocation and what its output must (and must not) contain
type CmdTestCase struct {
	Name                     string
	Args                     []string
	ExpectedErr              error
	ExpectedErrPatterns      []string
	ExpectedStdoutPatterns   []string
	UnexpectedStdoutPatterns []string
	ExpectedStderrPatterns   []string
}

// RunCmdTestCases runs each case as a subtest, capturing os.Stdout and os.Stderr of the execute call
func RunCmdTestCases(t *testing.T, execute func(args []string, version string) error, testCases []CmdTestCase, version string) {
	t.Helper()
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Helper()
			stdout, stderr, err := CaptureStdoutStderr(func() error {
				return execute(tc.Args, version)
			})
			t.Log("stdout:", stdout)
			t.Log("stderr:", stderr)

			checkContains(t, tc.ExpectedStdoutPatterns, stdout, "stdout")
			checkNotContains(t, tc.UnexpectedStdoutPatterns, stdout, "stdout")
			checkContains(t, tc.ExpectedStderrPatterns, stderr, "stderr")
			checkError(t, tc.ExpectedErr, tc.ExpectedErrPatterns, err)
		})
	}
}

func checkError(t *testing.T, expectedErr error, expectedErrPatterns []string, actualErr error) {
	t.Helper()
	if expectedErr == nil && len(expectedErrPatterns) == 0 {
		if actualErr != nil {
			t.Errorf("unexpected error was returned: %v", actualErr)
		}
		return
	}
	if actualErr == nil {
		t.Errorf("error was not returned as expected")
		return
	}
	if expectedErr != nil && !errors.Is(actualErr, expectedErr) {
		t.Errorf("wrong error was returned: expected `%v`, got `%v`", expectedErr, actualErr)
	}
	for _, pattern := range expectedErrPatterns {
		if !strings.Contains(actualErr.Error(), pattern) {
			t.Errorf("wrong error was returned: expected pattern `%v`, got `%v`", pattern, actualErr.Error())
		}
	}
}

func checkContains(t *testing.T, expectedPatterns []string, actual, outputTitle string) {
	t.Helper()
	for _, pattern := range expectedPatterns {
		if !strings.Contains(actual, pattern) {
			t.Errorf("%s: expected pattern `%v`, actual `%v`", outputTitle, pattern, actual)
		}
	}
}

func checkNotContains(t *testing.T, unexpectedPatterns []string, actual, outputTitle string) {
	t.Helper()
	for _, pattern := range unexpectedPatterns {
		if strings.Contains(actual, pattern) {
			t.Errorf("%s: unexpected pattern `%v` found in `%v`", outputTitle, pattern, actual)
		}
	}
}

// CaptureStdoutStderr swaps os.Stdout and os.Stderr for pipes while f runs and returns what was written
func CaptureStdoutStderr(f func() error) (stdout string, stderr string, err error) {
	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		return
	}
	stderrReader, stderrWriter, err := os.Pipe()
	if err != nil {
		return
	}

	origStdout, origStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdoutWriter, stderrWriter
	defer func() {
		os.Stdout, os.Stderr = origStdout, origStderr
	}()

	wg := sync.WaitGroup{}
	drain := func(r io.Reader, dst *string) {
		defer wg.Done()
		var b bytes.Buffer
		_, _ = io.Copy(&b, r)
		*dst = b.String()
	}
	wg.Add(2)
	go drain(stdoutReader, &stdout)
	go drain(stderrReader, &stderr)

	err = f()
	stdoutWriter.Close()
	stderrWriter.Close()
	wg.Wait()
	return
}
