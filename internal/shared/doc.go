// Package shared holds utilities used across packages that do not belong
// to any single pipeline stage. Currently that is the testutil subpackage
// with its log-capture helpers.
package shared
