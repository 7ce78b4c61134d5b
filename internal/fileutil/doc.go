// Package fileutil reads subtitle text from disk and writes exported files.
package fileutil
