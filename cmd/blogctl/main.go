package main

import "kinblog/cmd/blogctl/commands"

func main() {
	commands.Execute()
}
