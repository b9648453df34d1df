package main

import "github.com/OpenTraceLab/schlayout/cmd/schlayout/cmd"

func main() {
	cmd.Execute()
}
