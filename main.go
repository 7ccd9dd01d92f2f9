package main

import "github.com/ology/basswalk/cmd"

func main() {
	cmd.Execute()
}
