//go:build !linux && !darwin

package cmd

func coreDumpLimit() string { return "" }
