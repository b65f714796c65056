package main

import "github.com/takumiyoshikawa/rcschema/cmd/rcschema/commands"

func main() {
	commands.Execute()
}
