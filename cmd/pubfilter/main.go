package main

import "github.com/anujrohit1/pubfilter/internal/cli"

func main() {
	cli.Execute()
}
