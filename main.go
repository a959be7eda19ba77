package main

import "github.com/osdev-kit/karch/cmd"

func main() {
	cmd.Execute()
}
