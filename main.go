package main

import "manifest-lint/internal/cli"

func main() {
	cli.Execute()
}
