package main

import "property-insights/cmd"

func main() {
	cmd.Execute()
}
