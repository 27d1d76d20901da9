package main

import "github.com/theirongolddev/lifedays/cmd"

func main() {
	cmd.Execute()
}
