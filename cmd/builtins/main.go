package main

import "builtins/internal/cli"

func main() {
	cli.Execute()
}
