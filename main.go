package main

import "github.com/alexiusacademia/gofsm/cmd"

func main() {
	cmd.Execute()
}
