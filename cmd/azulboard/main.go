package main

import "github.com/mcoot/azulboard/internal/cli"

func main() {
	cli.Execute()
}
