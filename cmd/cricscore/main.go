package main

import "github.com/pfrederiksen/cricscore/internal/cli"

func main() {
	cli.Execute()
}
