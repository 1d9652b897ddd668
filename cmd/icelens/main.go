package main

import "github.com/icelens/icelens/cmd/icelens/cmd"

func main() {
	cmd.Execute()
}
