package main

import (
	cmdapp "mergington.dev/backend/cmd/app"
)

func main() {
	cmdapp.Run()
}
