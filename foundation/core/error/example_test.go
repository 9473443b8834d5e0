// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the Parser-Latex error handling
//              system. These examples demonstrate common use cases.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with error examples

package error

import (
	"fmt"
	"os"
	"strings"
)

// ExampleNew demonstrates creating a new error with context
func ExampleNew() {
	err := New("symbol outside alphabet").
		WithCode(CodeAlphabet).
		WithDetail("symbol", "#").
		WithDetail("position", 4)

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: symbol outside alphabet
	// Code: ALPHABET
	// Severity: low
}

// ExampleWrap demonstrates wrapping an existing error with context
func ExampleWrap() {
	// Simulate a missing example file
	fileErr := os.ErrNotExist

	// Wrap with domain context
	err := Wrap(fileErr, "example file unavailable").
		WithCode(CodeNotFound).
		WithDetail("path", "testdata/examples.txt").
		WithOperation("run_examples")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())

	// Output:
	// Error: example file unavailable: file does not exist
	// Code: NOT_FOUND
}

// ExampleError_WithDetails demonstrates adding multiple details to an error
func ExampleError_WithDetails() {
	details := map[string]interface{}{
		"formula":  `(\wedge (true))`,
		"position": 14,
		"expected": "open parenthesis",
		"found":    "close parenthesis",
	}

	err := New("unexpected token").
		WithCode(CodeSyntax).
		WithDetails(details)

	fmt.Println("Error:", err.Error())
	fmt.Println("Details count:", len(err.Details()))
	fmt.Println("Position:", err.Details()["position"])

	// Output:
	// Error: unexpected token
	// Details count: 4
	// Position: 14
}

// ExampleError_WithContext demonstrates adding context information
func ExampleError_WithContext() {
	err := New("formula rejected").
		WithCode(CodeFormulaShape).
		WithContext("gateway.ParseFormula").
		WithOperation("Parse").
		WithRequestID("req_abc123").
		WithDetail("formula", `((1))`)

	fmt.Println("Context:", err.Context())
	fmt.Println("Operation:", err.Operation())
	fmt.Println("Request ID:", err.RequestID())

	// Output:
	// Context: gateway.ParseFormula
	// Operation: Parse
	// Request ID: req_abc123
}

// ExampleHasCode demonstrates checking for specific error codes
func ExampleHasCode() {
	err := New("history query timed out").
		WithCode(CodeTimeout)

	if HasCode(err, CodeTimeout) {
		fmt.Println("This is a timeout error")
	}

	if HasCode(err, CodeStorageError) {
		fmt.Println("This is a storage error")
	} else {
		fmt.Println("This is not a storage error")
	}

	// Output:
	// This is a timeout error
	// This is not a storage error
}

// ExampleGetSeverityFromCode demonstrates automatic severity assignment
func ExampleGetSeverityFromCode() {
	codes := []Code{
		CodeServiceUnavailable,
		CodeStorageError,
		CodeConfigError,
		CodeSyntax,
	}

	for _, code := range codes {
		severity := GetSeverityFromCode(code)
		fmt.Printf("Code: %s -> Severity: %s (Should Alert: %t)\n",
			code, severity, severity.ShouldAlert())
	}

	// Output:
	// Code: SERVICE_UNAVAILABLE -> Severity: critical (Should Alert: true)
	// Code: STORAGE_ERROR -> Severity: high (Should Alert: true)
	// Code: CONFIG_ERROR -> Severity: medium (Should Alert: false)
	// Code: SYNTAX -> Severity: low (Should Alert: false)
}

// ExampleError_RootCause demonstrates finding the root cause of error chains
func ExampleError_RootCause() {
	// Create an error chain
	original := New("connection refused").WithCode(CodeConnectionFailed)
	middle := Wrap(original, "history store initialization failed")
	top := Wrap(middle, "service startup failed")

	fmt.Println("Top error:", top.Error())
	fmt.Println("Root cause:", top.RootCause().Error())
	fmt.Println("Root cause code:", GetCode(top.RootCause()))

	// Output:
	// Top error: service startup failed: history store initialization failed: connection refused
	// Root cause: connection refused
	// Root cause code: CONNECTION_FAILED
}

// ExampleError_MarshalJSON demonstrates JSON serialization for logging
func ExampleError_MarshalJSON() {
	err := New("unexpected token").
		WithCode(CodeSyntax).
		WithDetail("position", 7)

	// This would typically be consumed by a JSON logger
	data, _ := err.MarshalJSON()
	fmt.Println("Starts with code:", strings.HasPrefix(string(data), `{"code":"SYNTAX"`))
	fmt.Println("Contains position:", strings.Contains(string(data), `"position":7`))

	// Output:
	// Starts with code: true
	// Contains position: true
}

// Example_scannerError demonstrates error handling in the scanner
func Example_scannerError() {
	// Simulate alphabet validation during scanning
	scan := func(input string) error {
		for i, r := range input {
			if r == '#' {
				return New("symbol outside alphabet").
					WithCode(CodeAlphabet).
					WithDetail("symbol", string(r)).
					WithDetail("position", i)
			}
		}
		return nil
	}

	err := scan("(# (1))")
	if err != nil {
		fmt.Println("Scan error:", err.Error())
		fmt.Println("Category:", GetCode(err).Category())
		fmt.Println("HTTP Status:", GetCode(err).HTTPStatus())
	}

	// Output:
	// Scan error: symbol outside alphabet
	// Category: formula
	// HTTP Status: 400
}

// Example_parserError demonstrates error handling in the parser
func Example_parserError() {
	// Simulate a malformed binary connective
	parse := func(input string) error {
		if input == "" {
			return New("empty formula input").WithCode(CodeInvalidInput)
		}
		if input == `(\wedge (true))` {
			return New("binary connective requires two operands").
				WithCode(CodeSyntax).
				WithDetail("formula", input)
		}
		return nil
	}

	err := parse(`(\wedge (true))`)
	if err != nil {
		fmt.Println("Parse failed:", err.Error())
		fmt.Println("Error code:", GetCode(err))

		if HasCode(err, CodeSyntax) {
			fmt.Println("Reason: malformed formula")
		}
	}

	// Output:
	// Parse failed: binary connective requires two operands
	// Error code: SYNTAX
	// Reason: malformed formula
}
