package main

import "github.com/andrescamacho/smuggler-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
