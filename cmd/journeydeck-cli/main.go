package main

import "journeydeck/cmd/journeydeck-cli/cmd"

func main() {
	cmd.Execute()
}
