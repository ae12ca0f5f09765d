//go:build !windows

package storage

const lineSeparator = "\n"
