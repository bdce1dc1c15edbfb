package main

import "framer/cmd"

func main() {
	cmd.Execute()
}
