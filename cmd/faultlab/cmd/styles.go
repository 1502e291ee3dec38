// ============================================================================
// faultlab - Error Condition Catalog
// ============================================================================
//
// Package:     cmd
// Description: Styles for the faultlab command line output
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	colorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorSuccess   = lipgloss.Color("#10B981") // Emerald
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorError     = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#94A3B8") // Slate 400
)

// Header styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	columnStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)
)

// Catalog listing
var (
	operationStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Width(26)

	usageStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	codeStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// Outcome styles
var (
	passStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(10)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)
)
