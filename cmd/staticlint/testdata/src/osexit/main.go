package main

import (
	"fmt"
	"os"
)

func exit() {
	os.Exit(2)
}

func main() {
	defer fmt.Println("unreachable")
	if len(os.Args) > 1 {
		exit()
	}
	func() {
		os.Exit(1) // want "os.Exit called"
	}()
	os.Exit(0) // want "os.Exit called"
}
