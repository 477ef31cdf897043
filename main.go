package main

import (
	"lum-reader/cli"
)

func main() {
	cli.Start()
}
