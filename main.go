package main

import "github.com/nci/vrtbuffer/cmd"

func main() {
	cmd.Execute()
}
