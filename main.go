package main

import "github.com/lepinkainen/bookhunt/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
