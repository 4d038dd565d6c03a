package main

import "github.com/agentic-research/blmcode/cmd"

func main() {
	cmd.Execute()
}
