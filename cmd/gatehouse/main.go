package main

import "github.com/tcallow/gatehouse/cmd/gatehouse/cmd"

func main() {
	cmd.Execute()
}
