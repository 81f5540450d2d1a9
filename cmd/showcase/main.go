package main

import "showcase/internal/cli"

func main() {
	cli.Execute()
}
