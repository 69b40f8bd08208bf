package main

import "github.com/calumh/ghostsnake/internal/cli"

func main() {
	cli.Execute()
}
