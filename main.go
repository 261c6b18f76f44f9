package main

import "tmanina/cmd"

func main() {
	cmd.Execute()
}
