// cmd/memstrap/main.go
package main

import (
	"memstrap/internal/app"
	"memstrap/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
