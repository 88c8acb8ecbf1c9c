package main

import "photoGallery/internal/cli"

func main() {
	cli.Execute()
}
