package main

import "github.com/sumwatshade/textwatch/cmd"

func main() {
	cmd.Execute()
}
