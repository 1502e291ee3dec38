// Package stringx provides the text operations of the faultlab catalog.
//
// Package: stringx
// Title: Text Operations for faultlab Foundation
// Description: Null-aware string reversal and strict integer parsing. Absent
//              text is modelled as a nil *string; parse failures are always
//              INVALID_FORMAT errors from the foundation error package.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-18 v0.3.0: Reduced to the catalog text operations
//
// Usage:
//
//	reversed, err := stringx.Reverse(&input)  // NULL_INPUT when input is nil
//	n, err := stringx.ParseInt32("619")       // INVALID_FORMAT for "some string"
package stringx
