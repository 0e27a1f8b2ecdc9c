package main

import (
	"github.com/arenahq/arena/internal/cli"
)

func main() {
	cli.Execute()
}
