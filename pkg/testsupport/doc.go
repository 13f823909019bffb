// Package testsupport holds fakes and fixture helpers shared by package tests.
package testsupport
