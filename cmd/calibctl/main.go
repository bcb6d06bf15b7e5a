package main

import "calibctl/internal/cli"

func main() {
	cli.Execute()
}
