package main

import "github.com/gofvm/gofv/cmd"

func main() {
	cmd.Execute()
}
