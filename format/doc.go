// Package format names the output formats of the pbx tool.
package format
