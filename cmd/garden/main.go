// Command garden walks the herbal garden avatar, either behind a GLFW window or
// headless from a scripted key sequence.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
