package main

import (
	"shireesh.com/ontogen/cmd"
)

func main() {
	cmd.Execute()
}
