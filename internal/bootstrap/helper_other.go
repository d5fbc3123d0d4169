//go:build !linux

package bootstrap

func setParentDeathSignal() error { return nil }
