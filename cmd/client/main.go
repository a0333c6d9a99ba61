package main

import (
	"notemaster/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
