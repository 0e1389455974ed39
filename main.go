package main

import "pg-atlas/cmd"

func main() {
	cmd.Execute()
}
