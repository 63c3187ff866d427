package main

import (
	"nussifold/internal/appshell"
	"nussifold/internal/foldapp"
)

func main() {
	appshell.Main(foldapp.RunContext)
}
