package main

import (
	"github.com/pfrederiksen/pfr-turnovers/internal/cli"
)

func main() {
	cli.Execute()
}
