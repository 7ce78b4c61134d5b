// Package testsupport provides builders shared by package tests: isolated
// configs rooted in t.TempDir, subtitle fixture files, and an opened phrases
// store with cleanup registered.
package testsupport
