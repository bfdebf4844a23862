// cmd/lulcgen/main.go
package main

import (
	"lulcgen/internal/app"
	"lulcgen/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
