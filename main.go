package main

import "verba/cmd"

func main() {
	cmd.Execute()
}
