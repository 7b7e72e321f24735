package main

import "urban-people/internal/cli"

func main() {
	cli.Execute()
}
