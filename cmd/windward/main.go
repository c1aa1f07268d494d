package main

import (
	"github.com/windward-offshore/windward-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
