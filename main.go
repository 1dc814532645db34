package main

import "github.com/kasuboski/nyaaz/cmd"

func main() {
	cmd.Execute()
}
