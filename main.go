package main

import "github.com/dotcommander/artscore/cmd"

func main() {
	cmd.Execute()
}
