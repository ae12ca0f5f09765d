//go:build windows

package storage

const lineSeparator = "\r\n"
