package main

import "github.com/katalvlaran/mstswap/cmd/mstswap/commands"

func main() {
	commands.Execute()
}
