package main

import "aiswitch/internal/cli"

func main() {
	cli.Execute()
}
