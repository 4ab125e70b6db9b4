package main

import "github.com/epochlab/protopatch/cmd"

func main() {
	cmd.Execute()
}
