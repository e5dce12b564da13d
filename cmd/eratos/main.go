// cmd/eratos/main.go
package main

import (
	"eratos/internal/app"
	"eratos/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
