package main

import "wellbeing/cmd/dw/root"

func main() {
	root.Execute()
}
