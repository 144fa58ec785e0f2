package main

import "github.com/Divyanshgupta04/lern-deployment/cmd"

func main() {
	cmd.Execute()
}
