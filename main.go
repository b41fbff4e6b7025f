package main

import (
	"github.com/biogrammatics/codopt/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
