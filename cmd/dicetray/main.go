package main

import "os"

var version = "0.1.0-alpha"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
