package main

import "github.com/robbyt/go-polyshell/cmd"

func main() {
	cmd.Execute()
}
