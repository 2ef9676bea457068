//go:build !ebiten

package main

import "errors"

func runWindow() error {
	return errors.New("the window host requires the ebiten build tag; rebuild with -tags ebiten or use `life tui`")
}
