// File: severity_test.go
// Title: Severity Tests
// Description: Tests for error severity functionality including string
//              representation, alerting rules, and automatic severity
//              determination from error codes.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package error

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected bool
	}{
		{"low does not alert", SeverityLow, false},
		{"medium does not alert", SeverityMedium, false},
		{"high alerts", SeverityHigh, true},
		{"critical alerts", SeverityCritical, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.severity.ShouldAlert(); got != tt.expected {
				t.Errorf("ShouldAlert() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	if SeverityLow.Priority() >= SeverityCritical.Priority() {
		t.Error("SeverityLow must have lower priority than SeverityCritical")
	}
	if SeverityMedium.Level() != 1 {
		t.Errorf("SeverityMedium.Level() = %d, want 1", SeverityMedium.Level())
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected Severity
	}{
		{"alphabet is low", CodeAlphabet, SeverityLow},
		{"syntax is low", CodeSyntax, SeverityLow},
		{"trailing input is low", CodeTrailingInput, SeverityLow},
		{"invalid input is low", CodeInvalidInput, SeverityLow},
		{"storage is high", CodeStorageError, SeverityHigh},
		{"connection is high", CodeConnectionFailed, SeverityHigh},
		{"service init is high", CodeServiceInitialization, SeverityHigh},
		{"config is medium", CodeConfigError, SeverityMedium},
		{"service unavailable is critical", CodeServiceUnavailable, SeverityCritical},
		{"unknown defaults to medium", Code("SOMETHING_ELSE"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.expected {
				t.Errorf("GetSeverityFromCode(%v) = %v, want %v", tt.code, got, tt.expected)
			}
		})
	}
}
