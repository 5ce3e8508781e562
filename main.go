package main

import (
	"ddl-extract/cmd"
)

func main() {
	cmd.Execute()
}
