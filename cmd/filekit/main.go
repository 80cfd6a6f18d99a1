package main

import "github.com/Azure/filekit/cmd/filekit/commands"

func main() {
	commands.ExecuteCLI()
}
