package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newApp(os.Stdin, os.Stdout, os.Stderr)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
