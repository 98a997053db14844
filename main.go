package main

import "github.com/mj1618/displaymode/cmd"

func main() {
	cmd.Execute()
}
